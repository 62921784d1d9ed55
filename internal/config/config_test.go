package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"resume": "resume.json",
		"num_questions": 7,
		"seed": 42,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "resume.json", cfg.Resume)
	assert.Equal(t, 7, cfg.NumQuestions)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")

	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeConfig(t, "{not json")

	_, err := LoadConfig(path)

	assert.ErrorContains(t, err, "failed to parse config JSON")
}

func TestValidate_JobSourcesMutuallyExclusive(t *testing.T) {
	cfg := &Config{JobDescription: "jd.json", JobURL: "https://example.com/job"}

	err := cfg.Validate()

	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestValidate_NegativeNumQuestions(t *testing.T) {
	cfg := &Config{NumQuestions: -1}

	err := cfg.Validate()

	assert.ErrorContains(t, err, "non-negative")
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "absent.json")}

	err := cfg.Validate()

	assert.ErrorContains(t, err, "resume file not found")
}

func TestValidate_EmptyConfigPasses(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{Resume: "mine.json"}

	merged := cfg.MergeWithDefaults(Config{
		Resume:       "default.json",
		Templates:    "data/templates",
		NumQuestions: 3,
	})

	assert.Equal(t, "mine.json", merged.Resume)
	assert.Equal(t, "data/templates", merged.Templates)
	assert.Equal(t, 3, merged.NumQuestions)
}

func TestMergeWithDefaults_AppliesQuestionCountFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})

	assert.Equal(t, DefaultNumQuestions, merged.NumQuestions)
}
