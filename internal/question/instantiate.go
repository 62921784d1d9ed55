// Package question binds template variables into concrete question text.
package question

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/assessment-agent/internal/types"
)

// Instantiator turns question templates into concrete questions using an
// injected pseudo-random source for variable value picks.
type Instantiator struct {
	rng *rand.Rand
}

// NewInstantiator creates an Instantiator. A nil rng falls back to a
// time-seeded source.
func NewInstantiator(rng *rand.Rand) *Instantiator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Instantiator{rng: rng}
}

// Instantiate generates one Question from a template. For each declared
// variable with a non-empty value list it picks one value uniformly at
// random and replaces every literal {variable} occurrence. A variable with
// an empty value list leaves its placeholder verbatim — intentional
// passthrough, not an error. The candidate parameter is reserved for future
// content personalization beyond selection.
func (i *Instantiator) Instantiate(template *types.QuestionTemplate, _ *types.NormalizedCandidate) *types.Question {
	content := template.TemplateText

	// Variables resolve in sorted name order so a seeded source yields the
	// same picks regardless of map iteration order.
	names := make([]string, 0, len(template.Variables))
	for name := range template.Variables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		values := template.Variables[name]
		if len(values) == 0 {
			continue
		}
		replacement := values[i.rng.Intn(len(values))]
		content = strings.ReplaceAll(content, "{"+name+"}", replacement)
	}

	skills := make([]string, len(template.RequiresSkills))
	copy(skills, template.RequiresSkills)

	return &types.Question{
		QuestionID:   uuid.NewString(),
		TemplateID:   template.TemplateID,
		Category:     template.Category,
		Subcategory:  template.Subcategory,
		QuestionType: template.QuestionType,
		Difficulty:   template.Difficulty,
		Content:      content,
		SkillsTested: skills,
		Metadata:     map[string]any{},
	}
}
