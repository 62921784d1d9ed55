package types

import (
	"github.com/go-playground/validator/v10"
)

// QuestionType identifies the response format a question expects.
type QuestionType string

// Question type values.
const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeCoding         QuestionType = "coding"
	TypeShortAnswer    QuestionType = "short_answer"
	TypeOpenEnded      QuestionType = "open_ended"
)

// DifficultyLevel bands a question template by difficulty.
type DifficultyLevel string

// Difficulty level values.
const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
	DifficultyExpert DifficultyLevel = "expert"
)

// QuestionCategory separates general CS questions from domain-specific ones.
type QuestionCategory string

// Question category values.
const (
	CategoryCoreCS         QuestionCategory = "core_cs"
	CategoryDomainSpecific QuestionCategory = "domain_specific"
)

// QuestionTemplate is a catalog record used to generate questions.
// Template text contains {variable} placeholders bound at instantiation time.
type QuestionTemplate struct {
	TemplateID     string              `json:"template_id" validate:"required"`
	Category       QuestionCategory    `json:"category" validate:"required,oneof=core_cs domain_specific"`
	Subcategory    string              `json:"subcategory" validate:"required"`
	QuestionType   QuestionType        `json:"question_type" validate:"required,oneof=multiple_choice coding short_answer open_ended"`
	Difficulty     DifficultyLevel     `json:"difficulty" validate:"required,oneof=easy medium hard expert"`
	TemplateText   string              `json:"template_text" validate:"required"`
	Variables      map[string][]string `json:"variables,omitempty"`
	RequiresSkills []string            `json:"requires_skills,omitempty"`
}

// Validate checks the template record against field constraints.
func (t *QuestionTemplate) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

// Question is a concrete question generated from a template for one assessment.
// It is immutable once created.
type Question struct {
	QuestionID   string           `json:"question_id"`
	TemplateID   string           `json:"template_id,omitempty"`
	Category     QuestionCategory `json:"category"`
	Subcategory  string           `json:"subcategory"`
	QuestionType QuestionType     `json:"question_type"`
	Difficulty   DifficultyLevel  `json:"difficulty"`
	Content      string           `json:"content"`
	SkillsTested []string         `json:"skills_tested,omitempty"`
	Metadata     map[string]any   `json:"metadata,omitempty"`
}

// ReferenceAnswer holds the model answer and scoring rubric for a question.
// Rubric weights need not sum to one; the evaluator normalizes.
type ReferenceAnswer struct {
	AnswerID      string             `json:"answer_id"`
	QuestionID    string             `json:"question_id"`
	Content       string             `json:"content"`
	KeyPoints     []string           `json:"key_points,omitempty"`
	ScoringRubric map[string]float64 `json:"scoring_rubric,omitempty"`
	Explanation   string             `json:"explanation,omitempty"`
}
