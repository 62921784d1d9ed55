package parsing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/assessment-agent/internal/llm"
	"github.com/jonathan/assessment-agent/internal/prompts"
	"github.com/jonathan/assessment-agent/internal/types"
)

// maxPostingChars caps how much raw posting text is sent to the extractor.
const maxPostingChars = 20000

// ExtractJobDescription turns raw job posting text into a structured
// JobDescription using the fast model tier. The extracted document still
// passes the same schema gate as a file-provided one before entering the core.
func ExtractJobDescription(ctx context.Context, client llm.Client, rawText string) (*types.JobDescription, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, fmt.Errorf("job posting text is empty")
	}
	if len(rawText) > maxPostingChars {
		rawText = rawText[:maxPostingChars]
	}

	template, err := prompts.Get("job_extraction.json", "job_description")
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{"Posting": rawText})

	out, err := client.GenerateJSON(ctx, prompt, llm.TierFast)
	if err != nil {
		return nil, fmt.Errorf("job description extraction failed: %w", err)
	}

	var jd types.JobDescription
	if err := json.Unmarshal([]byte(out), &jd); err != nil {
		return nil, fmt.Errorf("failed to parse extracted job description: %w", err)
	}

	jd.RequiredSkills = NormalizeSkillTokens(jd.RequiredSkills)
	jd.PreferredSkills = NormalizeSkillTokens(jd.PreferredSkills)

	if jd.Title == "" {
		return nil, fmt.Errorf("extracted job description has no title")
	}

	return &jd, nil
}
