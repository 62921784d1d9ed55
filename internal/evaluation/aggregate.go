package evaluation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/assessment-agent/internal/types"
)

// Score thresholds for deriving strengths and improvement areas.
const (
	strengthFloor      = 80.0
	improvementCeiling = 50.0
)

// maxHighlights caps the strengths and improvement lists.
const maxHighlights = 3

// Aggregate combines per-question evaluations into an assessment-level
// evaluation. The overall score is the arithmetic mean, 0 when the list is
// empty. Strength and improvement tags deduplicate in first-occurrence order
// (evaluation order), then truncate to the top 3 — the tie-break is
// deliberately stable rather than set-ordered.
func Aggregate(
	assessmentID, candidateID string,
	evaluations []types.QuestionEvaluation,
	questionsByID map[string]types.Question,
) *types.AssessmentEvaluation {
	total := 0.0
	strengths := make([]string, 0, maxHighlights)
	improvements := make([]string, 0, maxHighlights)

	for _, eval := range evaluations {
		total += eval.Score

		question, ok := questionsByID[eval.QuestionID]
		if !ok {
			continue
		}
		if eval.Score >= strengthFloor {
			strengths = appendUnique(strengths,
				fmt.Sprintf("Strong understanding of %s", question.Subcategory))
		} else if eval.Score <= improvementCeiling {
			improvements = appendUnique(improvements,
				fmt.Sprintf("Needs improvement in %s", question.Subcategory))
		}
	}

	overall := 0.0
	if len(evaluations) > 0 {
		overall = total / float64(len(evaluations))
	}

	return &types.AssessmentEvaluation{
		EvaluationID:        uuid.NewString(),
		AssessmentID:        assessmentID,
		CandidateID:         candidateID,
		OverallScore:        overall,
		QuestionEvaluations: evaluations,
		Strengths:           truncate(strengths),
		AreasForImprovement: truncate(improvements),
		EvaluatedAt:         time.Now().UTC(),
	}
}

// appendUnique appends value unless already present, preserving first
// occurrence order.
func appendUnique(list []string, value string) []string {
	for _, existing := range list {
		if existing == value {
			return list
		}
	}
	return append(list, value)
}

func truncate(list []string) []string {
	if len(list) > maxHighlights {
		return list[:maxHighlights]
	}
	return list
}
