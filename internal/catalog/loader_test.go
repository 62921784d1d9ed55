package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/assessment-agent/internal/types"
)

const validTemplate = `{
	"template_id": "core_cs_dsa_001",
	"category": "core_cs",
	"subcategory": "dsa",
	"question_type": "coding",
	"difficulty": "medium",
	"template_text": "Write a function to reverse a {structure}.",
	"variables": {"structure": ["list", "string"]},
	"requires_skills": ["algorithms"]
}`

func writeTemplate(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadDir_LoadsValidTemplates(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "a.json", validTemplate)

	templates, err := NewLoader(nil).LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, templates, 1)
	assert.Equal(t, "core_cs_dsa_001", templates[0].TemplateID)
	assert.Equal(t, types.TypeCoding, templates[0].QuestionType)
}

func TestLoadDir_SkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "bad.json", `{"template_id": "x"}`)
	writeTemplate(t, dir, "broken.json", "{not json")
	writeTemplate(t, dir, "good.json", validTemplate)

	templates, err := NewLoader(nil).LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, templates, 1)
	assert.Equal(t, "core_cs_dsa_001", templates[0].TemplateID)
}

func TestLoadDir_StableFilenameOrder(t *testing.T) {
	dir := t.TempDir()
	second := `{
		"template_id": "zzz_template",
		"category": "domain_specific",
		"subcategory": "machine_learning",
		"question_type": "short_answer",
		"difficulty": "hard",
		"template_text": "Explain {algorithm}.",
		"variables": {"algorithm": ["k-means"]},
		"requires_skills": ["machine_learning"]
	}`
	writeTemplate(t, dir, "b_second.json", second)
	writeTemplate(t, dir, "a_first.json", validTemplate)

	templates, err := NewLoader(nil).LoadDir(dir)
	require.NoError(t, err)

	require.Len(t, templates, 2)
	assert.Equal(t, "core_cs_dsa_001", templates[0].TemplateID)
	assert.Equal(t, "zzz_template", templates[1].TemplateID)
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	_, err := NewLoader(nil).LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.Error(t, err)
}

func TestLoadDir_EmptyDirectory(t *testing.T) {
	templates, err := NewLoader(nil).LoadDir(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, templates)
}
