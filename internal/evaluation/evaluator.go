package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/assessment-agent/internal/types"
)

// fixedConfidence stands in for a real calibration model.
const fixedConfidence = 0.85

// Feedback bands keyed by score floor.
const (
	excellentFloor = 80.0
	goodFloor      = 60.0
	adequateFloor  = 40.0
)

// Fixed feedback text per band.
const (
	feedbackExcellent    = "Excellent response that covers most key points. Shows strong understanding."
	feedbackGood         = "Good response with some key points addressed. Some areas could be improved."
	feedbackAdequate     = "Adequate response but missing several key points. Needs more thorough understanding."
	feedbackInsufficient = "Response is insufficient and missing most key points. Significant improvement needed."
)

// Evaluator scores candidate responses against reference rubrics using a
// semantic matching collaborator.
type Evaluator struct {
	matcher Matcher
	log     *zap.Logger
}

// NewEvaluator creates an Evaluator. A nil logger disables logging.
func NewEvaluator(matcher Matcher, log *zap.Logger) *Evaluator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{matcher: matcher, log: log}
}

// Evaluate scores one response against one question's reference answer.
// Each key point's match score is weighted by its rubric weight, or by
// 1/len(key_points) when the rubric omits it, then scaled to [0,100] and
// clamped.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	question *types.Question,
	reference *types.ReferenceAnswer,
	response *types.CandidateResponse,
) (*types.QuestionEvaluation, error) {
	matches, err := e.matcher.MatchKeyPoints(ctx, question, reference, response)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate response %s: %w", response.ResponseID, err)
	}

	uniformWeight := 0.0
	if len(reference.KeyPoints) > 0 {
		uniformWeight = 1.0 / float64(len(reference.KeyPoints))
	}

	score := 0.0
	for keyPoint, matchScore := range matches {
		weight, ok := reference.ScoringRubric[keyPoint]
		if !ok {
			weight = uniformWeight
		}
		score += matchScore * weight * 100
	}
	score = clampScore(score)

	e.log.Debug("evaluated response",
		zap.String("response_id", response.ResponseID),
		zap.String("question_id", question.QuestionID),
		zap.Float64("score", score),
	)

	return &types.QuestionEvaluation{
		EvaluationID:     uuid.NewString(),
		ResponseID:       response.ResponseID,
		QuestionID:       question.QuestionID,
		Score:            score,
		Feedback:         feedbackForScore(score),
		Confidence:       fixedConfidence,
		KeyPointsMatched: matches,
	}, nil
}

// feedbackForScore maps a clamped score onto its feedback band.
func feedbackForScore(score float64) string {
	switch {
	case score >= excellentFloor:
		return feedbackExcellent
	case score >= goodFloor:
		return feedbackGood
	case score >= adequateFloor:
		return feedbackAdequate
	default:
		return feedbackInsufficient
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
