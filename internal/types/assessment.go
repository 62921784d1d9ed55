package types

import "time"

// Assessment status values.
const (
	StatusCreated    = "created"
	StatusSent       = "sent"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// Assessment is an online assessment created for one candidate against one job.
type Assessment struct {
	AssessmentID     string            `json:"assessment_id"`
	CandidateID      string            `json:"candidate_id"`
	JobID            string            `json:"job_id"`
	CreatedAt        time.Time         `json:"created_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	Status           string            `json:"status"`
	Questions        []Question        `json:"questions"`
	ReferenceAnswers []ReferenceAnswer `json:"reference_answers"`
	Metadata         map[string]any    `json:"metadata,omitempty"`
}

// CandidateResponse is a candidate's free-text answer to one question.
type CandidateResponse struct {
	ResponseID  string    `json:"response_id"`
	QuestionID  string    `json:"question_id"`
	CandidateID string    `json:"candidate_id"`
	Content     string    `json:"content"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// JobDescription is the job-requirements input document.
type JobDescription struct {
	Title            string   `json:"title"`
	Company          string   `json:"company,omitempty"`
	Location         string   `json:"location,omitempty"`
	Description      string   `json:"description,omitempty"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	RequiredSkills   []string `json:"required_skills"`
	PreferredSkills  []string `json:"preferred_skills,omitempty"`
}
