package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateCommand_RequiresAssessmentSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate", "--responses", "responses.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --assessment-id or --assessment must be provided")
}

func TestEvaluateCommand_AssessmentSourcesMutuallyExclusive(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate",
		"--assessment-id", "abc",
		"--assessment", "assessment.json",
		"--responses", "responses.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestEvaluateCommand_RequiresResponses(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "evaluate", "--assessment", "assessment.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--responses is required")
}
