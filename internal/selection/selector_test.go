package selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/assessment-agent/internal/types"
)

func testCandidate(level types.ExperienceLevel, skills ...string) *types.NormalizedCandidate {
	core := make(map[string]float64, len(skills))
	for _, skill := range skills {
		core[skill] = 0.8
	}
	return &types.NormalizedCandidate{
		CandidateID:     "candidate-1",
		SkillMap:        types.SkillMap{CoreSkills: core, DomainSkills: map[string]float64{}},
		ExperienceLevel: level,
	}
}

func testTemplate(id string, category types.QuestionCategory, difficulty types.DifficultyLevel, requires ...string) types.QuestionTemplate {
	return types.QuestionTemplate{
		TemplateID:     id,
		Category:       category,
		Subcategory:    "dsa",
		QuestionType:   types.TypeShortAnswer,
		Difficulty:     difficulty,
		TemplateText:   "Explain {x}.",
		RequiresSkills: requires,
	}
}

func TestFilterBySkills_MatchesCandidateSkills(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("t1", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("t2", types.CategoryCoreCS, types.DifficultyMedium, "golang"),
	}
	candidate := testCandidate(types.LevelMid, "python")
	job := &types.JobDescription{Title: "Engineer"}

	filtered := selector.FilterBySkills(templates, candidate, job)

	require.Len(t, filtered, 1)
	assert.Equal(t, "t1", filtered[0].TemplateID)
}

func TestFilterBySkills_DomainTemplateMatchesJobSkills(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("t1", types.CategoryDomainSpecific, types.DifficultyMedium, "kubernetes"),
		testTemplate("t2", types.CategoryCoreCS, types.DifficultyMedium, "kubernetes"),
	}
	candidate := testCandidate(types.LevelMid, "python")
	job := &types.JobDescription{Title: "Engineer", RequiredSkills: []string{"Kubernetes"}}

	filtered := selector.FilterBySkills(templates, candidate, job)

	// Only the domain-specific template may match via job skills.
	require.Len(t, filtered, 1)
	assert.Equal(t, "t1", filtered[0].TemplateID)
}

func TestFilterByDifficulty_EntryBand(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("easy", types.CategoryCoreCS, types.DifficultyEasy, "python"),
		testTemplate("medium", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("expert", types.CategoryCoreCS, types.DifficultyExpert, "python"),
	}

	banded := selector.FilterByDifficulty(templates, types.LevelEntry, 2)

	require.Len(t, banded, 2)
	assert.Equal(t, "easy", banded[0].TemplateID)
	assert.Equal(t, "medium", banded[1].TemplateID)
}

func TestFilterByDifficulty_RelaxesWhenBandTooThin(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("expert1", types.CategoryCoreCS, types.DifficultyExpert, "python"),
		testTemplate("expert2", types.CategoryCoreCS, types.DifficultyExpert, "python"),
		testTemplate("easy1", types.CategoryCoreCS, types.DifficultyEasy, "python"),
	}

	// Entry band only holds one easy template; the constraint relaxes.
	banded := selector.FilterByDifficulty(templates, types.LevelEntry, 2)

	assert.Len(t, banded, 3)
}

func TestFilterByDifficulty_UnknownLevelDefaultsToMedium(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("easy", types.CategoryCoreCS, types.DifficultyEasy, "python"),
		testTemplate("medium", types.CategoryCoreCS, types.DifficultyMedium, "python"),
	}

	banded := selector.FilterByDifficulty(templates, types.ExperienceLevel("unknown"), 1)

	require.Len(t, banded, 1)
	assert.Equal(t, "medium", banded[0].TemplateID)
}

func TestSelect_NoRelevantTemplates(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("t1", types.CategoryCoreCS, types.DifficultyMedium, "golang"),
	}
	candidate := testCandidate(types.LevelMid, "python")
	job := &types.JobDescription{Title: "Engineer"}

	_, err := selector.Select(templates, candidate, job, 3)

	assert.ErrorIs(t, err, ErrNoSuitableTemplates)
}

func TestSelect_ZeroQuestionsReturnsEmpty(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("t1", types.CategoryCoreCS, types.DifficultyMedium, "python"),
	}
	candidate := testCandidate(types.LevelMid, "python")
	job := &types.JobDescription{Title: "Engineer"}

	picked, err := selector.Select(templates, candidate, job, 0)

	require.NoError(t, err)
	assert.Empty(t, picked)
}

func TestSelect_RequestExceedsAvailable(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(1)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("t1", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("t2", types.CategoryCoreCS, types.DifficultyHard, "python"),
	}
	candidate := testCandidate(types.LevelMid, "python")
	job := &types.JobDescription{Title: "Engineer"}

	picked, err := selector.Select(templates, candidate, job, 10)

	require.NoError(t, err)
	assert.Len(t, picked, 2)
}

func TestSelect_SubsetOfRelevant(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(42)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("t1", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("t2", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("t3", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("t4", types.CategoryCoreCS, types.DifficultyHard, "golang"),
	}
	candidate := testCandidate(types.LevelMid, "python")
	job := &types.JobDescription{Title: "Engineer"}

	picked, err := selector.Select(templates, candidate, job, 2)
	require.NoError(t, err)
	require.Len(t, picked, 2)

	relevant := map[string]bool{"t1": true, "t2": true, "t3": true}
	for _, template := range picked {
		assert.True(t, relevant[template.TemplateID], template.TemplateID)
	}
}

func TestSelect_SeededDeterminism(t *testing.T) {
	templates := []types.QuestionTemplate{
		testTemplate("t1", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("t2", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("t3", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("t4", types.CategoryCoreCS, types.DifficultyMedium, "python"),
	}
	candidate := testCandidate(types.LevelMid, "python")
	job := &types.JobDescription{Title: "Engineer"}

	first, err := NewSelector(rand.New(rand.NewSource(7)), nil).Select(templates, candidate, job, 2)
	require.NoError(t, err)
	second, err := NewSelector(rand.New(rand.NewSource(7)), nil).Select(templates, candidate, job, 2)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSelect_EntryCandidateAvoidsExpertWhenBandSuffices(t *testing.T) {
	selector := NewSelector(rand.New(rand.NewSource(3)), nil)
	templates := []types.QuestionTemplate{
		testTemplate("easy1", types.CategoryCoreCS, types.DifficultyEasy, "python"),
		testTemplate("easy2", types.CategoryCoreCS, types.DifficultyEasy, "python"),
		testTemplate("medium1", types.CategoryCoreCS, types.DifficultyMedium, "python"),
		testTemplate("expert1", types.CategoryCoreCS, types.DifficultyExpert, "python"),
	}
	candidate := testCandidate(types.LevelEntry, "python")
	job := &types.JobDescription{Title: "Engineer"}

	picked, err := selector.Select(templates, candidate, job, 3)
	require.NoError(t, err)
	require.Len(t, picked, 3)

	for _, template := range picked {
		assert.NotEqual(t, types.DifficultyExpert, template.Difficulty)
	}
}
