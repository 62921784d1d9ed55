// Package rubric defines per-question-type evaluation dimension contracts and
// constructs reference answers from the text generation service's output.
package rubric

import (
	"fmt"
	"strings"

	"github.com/jonathan/assessment-agent/internal/types"
)

// Dimension is one axis of a question type's evaluation contract.
type Dimension struct {
	Name   string
	Weight float64
}

// dimensionContracts fixes the evaluation dimension breakdown per question
// type. A type absent here has no rubric contract and cannot be synthesized.
var dimensionContracts = map[types.QuestionType][]Dimension{
	types.TypeMultipleChoice: {
		{Name: "correctness of selected option", Weight: 0.7},
		{Name: "quality of explanation", Weight: 0.3},
	},
	types.TypeCoding: {
		{Name: "correctness", Weight: 0.4},
		{Name: "efficiency", Weight: 0.3},
		{Name: "code quality", Weight: 0.2},
		{Name: "edge-case handling", Weight: 0.1},
	},
	types.TypeShortAnswer: {
		{Name: "accuracy", Weight: 0.5},
		{Name: "completeness", Weight: 0.3},
		{Name: "clarity", Weight: 0.2},
	},
	types.TypeOpenEnded: {
		{Name: "comprehensiveness", Weight: 0.3},
		{Name: "accuracy", Weight: 0.3},
		{Name: "reasoning", Weight: 0.3},
		{Name: "communication", Weight: 0.1},
	},
}

// UnsupportedTypeError indicates a question type with no dimension contract.
// It is fatal to that question's rubric synthesis, not to the batch.
type UnsupportedTypeError struct {
	QuestionType types.QuestionType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("no evaluation dimensions defined for question type %q", e.QuestionType)
}

// DimensionsFor returns the fixed dimension contract for a question type.
func DimensionsFor(questionType types.QuestionType) ([]Dimension, error) {
	dims, ok := dimensionContracts[questionType]
	if !ok {
		return nil, &UnsupportedTypeError{QuestionType: questionType}
	}
	return dims, nil
}

// formatDimensions renders a dimension contract for prompt injection.
func formatDimensions(dims []Dimension) string {
	var sb strings.Builder
	for _, dim := range dims {
		sb.WriteString(fmt.Sprintf("- %s (%.0f%%)\n", dim.Name, dim.Weight*100))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
