// Package schemas provides JSON Schema validation for input documents.
// Schema violations are rejected here, before any core component runs.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Embedded schema filenames, one per input document kind.
const (
	resumeSchema           = "resume.schema.json"
	jobDescriptionSchema   = "job_description.schema.json"
	questionTemplateSchema = "question_template.schema.json"
	responsesSchema        = "responses.schema.json"
)

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateResume validates candidate profile JSON against the resume schema.
func ValidateResume(document []byte) error {
	return validateAgainst(resumeSchema, document)
}

// ValidateJobDescription validates job description JSON against its schema.
func ValidateJobDescription(document []byte) error {
	return validateAgainst(jobDescriptionSchema, document)
}

// ValidateQuestionTemplate validates a single question template record.
func ValidateQuestionTemplate(document []byte) error {
	return validateAgainst(questionTemplateSchema, document)
}

// ValidateResponses validates a candidate responses document.
func ValidateResponses(document []byte) error {
	return validateAgainst(responsesSchema, document)
}

// validateAgainst validates a JSON document against an embedded schema file.
func validateAgainst(schemaName string, document []byte) error {
	schemaContent, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return &SchemaLoadError{Name: schemaName, Message: "schema not embedded", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaContent)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Name: schemaName, Message: "schema validation failed during load", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
