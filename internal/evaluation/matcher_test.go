package evaluation

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/assessment-agent/internal/llm"
)

// fakeLLM returns a fixed JSON payload for every generation call.
type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) GenerateContent(context.Context, string, llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	return f.response, f.err
}

func (f *fakeLLM) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeLLM) Close() error                  { return nil }

func TestMatchKeyPoints_ParsesMatches(t *testing.T) {
	client := &fakeLLM{response: `{"matches": {"point A": 0.9, "point B": 0.2}}`}
	matcher := NewLLMMatcher(client)
	question, reference, response := evalFixture()

	matches, err := matcher.MatchKeyPoints(context.Background(), question, reference, response)
	require.NoError(t, err)

	assert.Equal(t, 0.9, matches["point A"])
	assert.Equal(t, 0.2, matches["point B"])
}

func TestMatchKeyPoints_OmittedPointScoresZero(t *testing.T) {
	client := &fakeLLM{response: `{"matches": {"point A": 0.9}}`}
	matcher := NewLLMMatcher(client)
	question, reference, response := evalFixture()

	matches, err := matcher.MatchKeyPoints(context.Background(), question, reference, response)
	require.NoError(t, err)

	assert.Equal(t, 0.0, matches["point B"])
}

func TestMatchKeyPoints_ClampsOutOfRangeScores(t *testing.T) {
	client := &fakeLLM{response: `{"matches": {"point A": 1.7, "point B": -0.4}}`}
	matcher := NewLLMMatcher(client)
	question, reference, response := evalFixture()

	matches, err := matcher.MatchKeyPoints(context.Background(), question, reference, response)
	require.NoError(t, err)

	assert.Equal(t, 1.0, matches["point A"])
	assert.Equal(t, 0.0, matches["point B"])
}

func TestMatchKeyPoints_ServiceError(t *testing.T) {
	client := &fakeLLM{err: fmt.Errorf("deadline exceeded")}
	matcher := NewLLMMatcher(client)
	question, reference, response := evalFixture()

	_, err := matcher.MatchKeyPoints(context.Background(), question, reference, response)

	assert.ErrorContains(t, err, "deadline exceeded")
}

func TestMatchKeyPoints_MalformedJSON(t *testing.T) {
	client := &fakeLLM{response: "oops"}
	matcher := NewLLMMatcher(client)
	question, reference, response := evalFixture()

	_, err := matcher.MatchKeyPoints(context.Background(), question, reference, response)

	assert.ErrorContains(t, err, "failed to parse match result")
}
