package types

import "time"

// QuestionEvaluation scores one candidate response against one question's
// reference rubric. Score lies in [0,100], confidence in [0,1].
type QuestionEvaluation struct {
	EvaluationID     string             `json:"evaluation_id"`
	ResponseID       string             `json:"response_id"`
	QuestionID       string             `json:"question_id"`
	Score            float64            `json:"score"`
	Feedback         string             `json:"feedback"`
	Confidence       float64            `json:"confidence"`
	KeyPointsMatched map[string]float64 `json:"key_points_matched,omitempty"`
}

// AssessmentEvaluation aggregates per-question evaluations into an overall
// result. OverallScore is the mean of the question scores, 0 when empty.
type AssessmentEvaluation struct {
	EvaluationID        string               `json:"evaluation_id"`
	AssessmentID        string               `json:"assessment_id"`
	CandidateID         string               `json:"candidate_id"`
	OverallScore        float64              `json:"overall_score"`
	QuestionEvaluations []QuestionEvaluation `json:"question_evaluations"`
	Strengths           []string             `json:"strengths,omitempty"`
	AreasForImprovement []string             `json:"areas_for_improvement,omitempty"`
	EvaluatedAt         time.Time            `json:"evaluated_at"`
}
