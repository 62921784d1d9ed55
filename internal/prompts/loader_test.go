package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_LoadsEmbeddedPrompt(t *testing.T) {
	prompt, err := Get("rubric.json", "short_answer")
	require.NoError(t, err)

	assert.Contains(t, prompt, "{{.Question}}")
	assert.Contains(t, prompt, "{{.Dimensions}}")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("rubric.json", "telepathy")

	assert.ErrorContains(t, err, "not found")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "anything")

	assert.ErrorContains(t, err, "not found")
}

func TestMustGet_PanicsOnMissingPrompt(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("rubric.json", "telepathy")
	})
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Q: {{.Question}} D: {{.Dimensions}}", map[string]string{
		"Question":   "What is a B-tree?",
		"Dimensions": "- accuracy (50%)",
	})

	assert.Equal(t, "Q: What is a B-tree? D: - accuracy (50%)", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})

	assert.Equal(t, "x {{.Unknown}}", result)
}
