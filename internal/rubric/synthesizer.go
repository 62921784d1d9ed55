package rubric

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/assessment-agent/internal/llm"
	"github.com/jonathan/assessment-agent/internal/prompts"
	"github.com/jonathan/assessment-agent/internal/types"
)

// Synthesizer produces reference answers with key points and weighted
// scoring rubrics through the text generation service. The semantic content
// comes from the service; this package owns only the dimension contract and
// record construction.
type Synthesizer struct {
	client llm.Client
	log    *zap.Logger
}

// NewSynthesizer creates a Synthesizer. A nil logger disables logging.
func NewSynthesizer(client llm.Client, log *zap.Logger) *Synthesizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synthesizer{client: client, log: log}
}

// generatedAnswer is the structured output contract with the generation
// service.
type generatedAnswer struct {
	Content       string             `json:"content"`
	KeyPoints     []string           `json:"key_points"`
	ScoringRubric map[string]float64 `json:"scoring_rubric"`
	Explanation   string             `json:"explanation"`
}

// Synthesize generates the reference answer for one question. An unknown
// question type returns UnsupportedTypeError; service failures are wrapped
// and propagated rather than papered over with fabricated content.
func (s *Synthesizer) Synthesize(ctx context.Context, q *types.Question) (*types.ReferenceAnswer, error) {
	dims, err := DimensionsFor(q.QuestionType)
	if err != nil {
		return nil, err
	}

	template, err := prompts.Get("rubric.json", string(q.QuestionType))
	if err != nil {
		return nil, err
	}
	prompt := prompts.Format(template, map[string]string{
		"Question":   q.Content,
		"Dimensions": formatDimensions(dims),
	})

	out, err := s.client.GenerateJSON(ctx, prompt, llm.TierReasoning)
	if err != nil {
		return nil, fmt.Errorf("reference answer generation failed for question %s: %w", q.QuestionID, err)
	}

	var generated generatedAnswer
	if err := json.Unmarshal([]byte(out), &generated); err != nil {
		return nil, fmt.Errorf("failed to parse generated answer for question %s: %w", q.QuestionID, err)
	}
	if generated.Content == "" || len(generated.KeyPoints) == 0 {
		return nil, fmt.Errorf("generated answer for question %s is missing content or key points", q.QuestionID)
	}

	answer := &types.ReferenceAnswer{
		AnswerID:      uuid.NewString(),
		QuestionID:    q.QuestionID,
		Content:       generated.Content,
		KeyPoints:     generated.KeyPoints,
		ScoringRubric: generated.ScoringRubric,
		Explanation:   generated.Explanation,
	}

	s.log.Debug("synthesized reference answer",
		zap.String("question_id", q.QuestionID),
		zap.Int("key_points", len(answer.KeyPoints)),
	)
	return answer, nil
}
