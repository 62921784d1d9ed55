package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCommand_RequiresResume(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--jd", "jd.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "--resume is required")
}

func TestGenerateCommand_RequiresJobSource(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--resume", "resume.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "either --jd or --jd-url must be provided")
}

func TestGenerateCommand_JobSourcesMutuallyExclusive(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate",
		"--resume", "resume.json",
		"--jd", "jd.json",
		"--jd-url", "https://example.com/job")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestGenerateCommand_MissingConfigFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "generate", "--config", "/nonexistent/config.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "failed to load config")
}
