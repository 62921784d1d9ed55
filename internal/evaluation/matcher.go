// Package evaluation scores candidate responses against reference rubrics
// and aggregates per-question evaluations into an assessment result.
package evaluation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/assessment-agent/internal/llm"
	"github.com/jonathan/assessment-agent/internal/prompts"
	"github.com/jonathan/assessment-agent/internal/types"
)

// Matcher scores how well a response covers each key point of a reference
// answer, in [0,1] per key point. Implementations may be approximated by a
// deterministic stand-in in tests.
type Matcher interface {
	MatchKeyPoints(ctx context.Context, question *types.Question, reference *types.ReferenceAnswer, response *types.CandidateResponse) (map[string]float64, error)
}

// LLMMatcher performs semantic key-point matching through the reasoning
// model tier.
type LLMMatcher struct {
	client llm.Client
}

// NewLLMMatcher creates an LLMMatcher.
func NewLLMMatcher(client llm.Client) *LLMMatcher {
	return &LLMMatcher{client: client}
}

// matchResult is the structured output contract with the matching service.
type matchResult struct {
	Matches map[string]float64 `json:"matches"`
}

// MatchKeyPoints asks the service for a coverage score per key point.
// Scores outside [0,1] are clamped; key points the service omitted score 0.
func (m *LLMMatcher) MatchKeyPoints(
	ctx context.Context,
	question *types.Question,
	reference *types.ReferenceAnswer,
	response *types.CandidateResponse,
) (map[string]float64, error) {
	template, err := prompts.Get("matching.json", "key_points")
	if err != nil {
		return nil, err
	}

	var keyPointList strings.Builder
	for _, point := range reference.KeyPoints {
		keyPointList.WriteString("- ")
		keyPointList.WriteString(point)
		keyPointList.WriteString("\n")
	}

	prompt := prompts.Format(template, map[string]string{
		"Question":        question.Content,
		"ReferenceAnswer": reference.Content,
		"KeyPoints":       keyPointList.String(),
		"CandidateAnswer": response.Content,
	})

	out, err := m.client.GenerateJSON(ctx, prompt, llm.TierReasoning)
	if err != nil {
		return nil, fmt.Errorf("key point matching failed: %w", err)
	}

	var result matchResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return nil, fmt.Errorf("failed to parse match result: %w", err)
	}

	matches := make(map[string]float64, len(reference.KeyPoints))
	for _, point := range reference.KeyPoints {
		matches[point] = clampUnit(result.Matches[point])
	}
	return matches, nil
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
