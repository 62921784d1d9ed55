package selection

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/assessment-agent/internal/parsing"
	"github.com/jonathan/assessment-agent/internal/types"
)

// difficultyBands maps an experience level to its allowed difficulties.
var difficultyBands = map[types.ExperienceLevel][]types.DifficultyLevel{
	types.LevelEntry:  {types.DifficultyEasy, types.DifficultyMedium},
	types.LevelMid:    {types.DifficultyMedium, types.DifficultyHard},
	types.LevelSenior: {types.DifficultyHard, types.DifficultyExpert},
}

// defaultDifficulties applies when the experience level is unrecognized.
var defaultDifficulties = []types.DifficultyLevel{types.DifficultyMedium}

// Selector picks templates using an injected pseudo-random source so tests
// can assert exact selections.
type Selector struct {
	rng *rand.Rand
	log *zap.Logger
}

// NewSelector creates a Selector. A nil rng falls back to a time-seeded
// source; a nil logger disables logging.
func NewSelector(rng *rand.Rand, log *zap.Logger) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{rng: rng, log: log}
}

// Select runs the two-stage filter and picks up to n templates uniformly at
// random without replacement. An empty relevance filter returns
// ErrNoSuitableTemplates; the difficulty constraint is advisory and relaxes
// when it would leave fewer than n templates.
func (s *Selector) Select(
	templates []types.QuestionTemplate,
	candidate *types.NormalizedCandidate,
	job *types.JobDescription,
	n int,
) ([]types.QuestionTemplate, error) {
	relevant := s.FilterBySkills(templates, candidate, job)
	if len(relevant) == 0 {
		return nil, ErrNoSuitableTemplates
	}

	if n <= 0 {
		return []types.QuestionTemplate{}, nil
	}

	pool := s.FilterByDifficulty(relevant, candidate.ExperienceLevel, n)

	count := min(n, len(pool))
	picked := make([]types.QuestionTemplate, 0, count)
	for _, idx := range s.rng.Perm(len(pool))[:count] {
		picked = append(picked, pool[idx])
	}

	s.log.Info("selected question templates",
		zap.Int("catalog", len(templates)),
		zap.Int("relevant", len(relevant)),
		zap.Int("selected", len(picked)),
	)
	return picked, nil
}

// FilterBySkills retains templates whose required skills intersect the
// candidate's core or domain skill tokens, or — for domain-specific
// templates — the job's required skill set. This is the relevance gate.
func (s *Selector) FilterBySkills(
	templates []types.QuestionTemplate,
	candidate *types.NormalizedCandidate,
	job *types.JobDescription,
) []types.QuestionTemplate {
	candidateSkills := make(map[string]bool,
		len(candidate.SkillMap.CoreSkills)+len(candidate.SkillMap.DomainSkills))
	for token := range candidate.SkillMap.CoreSkills {
		candidateSkills[token] = true
	}
	for token := range candidate.SkillMap.DomainSkills {
		candidateSkills[token] = true
	}

	jobSkills := make(map[string]bool, len(job.RequiredSkills))
	for _, skill := range job.RequiredSkills {
		jobSkills[parsing.NormalizeSkillToken(skill)] = true
	}

	filtered := make([]types.QuestionTemplate, 0, len(templates))
	for _, template := range templates {
		if matchesAny(template.RequiresSkills, candidateSkills) {
			filtered = append(filtered, template)
			continue
		}
		if template.Category == types.CategoryDomainSpecific && matchesAny(template.RequiresSkills, jobSkills) {
			filtered = append(filtered, template)
		}
	}
	return filtered
}

// FilterByDifficulty retains templates in the candidate's difficulty band.
// If fewer than n remain, it falls back to the full input set rather than
// producing a thin assessment.
func (s *Selector) FilterByDifficulty(
	templates []types.QuestionTemplate,
	level types.ExperienceLevel,
	n int,
) []types.QuestionTemplate {
	allowed, ok := difficultyBands[level]
	if !ok {
		allowed = defaultDifficulties
	}
	allowedSet := make(map[types.DifficultyLevel]bool, len(allowed))
	for _, difficulty := range allowed {
		allowedSet[difficulty] = true
	}

	banded := make([]types.QuestionTemplate, 0, len(templates))
	for _, template := range templates {
		if allowedSet[template.Difficulty] {
			banded = append(banded, template)
		}
	}

	if len(banded) < n {
		s.log.Warn("not enough templates in difficulty band, relaxing constraint",
			zap.String("experience_level", string(level)),
			zap.Int("in_band", len(banded)),
			zap.Int("requested", n),
		)
		return templates
	}
	return banded
}

// matchesAny reports whether any required skill token is in the given set.
func matchesAny(requires []string, set map[string]bool) bool {
	for _, skill := range requires {
		if set[parsing.NormalizeSkillToken(skill)] {
			return true
		}
	}
	return false
}
