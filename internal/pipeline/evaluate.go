package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/assessment-agent/internal/evaluation"
	"github.com/jonathan/assessment-agent/internal/schemas"
	"github.com/jonathan/assessment-agent/internal/types"
)

// EvaluateOptions holds configuration for one assessment evaluation run.
// The assessment comes from the store by ID or from a JSON artifact file.
type EvaluateOptions struct {
	AssessmentID   string
	AssessmentPath string
	ResponsesPath  string
	OutputDir      string
}

// EvaluateAssessment scores candidate responses against an assessment's
// reference answers and aggregates them into an overall evaluation.
func (r *Runner) EvaluateAssessment(ctx context.Context, opts EvaluateOptions) (*types.AssessmentEvaluation, error) {
	fmt.Printf("Step 1/4: Loading assessment...\n")
	assessment, err := r.loadAssessment(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("loading assessment failed: %w", err)
	}

	fmt.Printf("Step 2/4: Loading responses from %s...\n", opts.ResponsesPath)
	responses, err := loadResponses(opts.ResponsesPath, assessment.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("loading responses failed: %w", err)
	}

	questionsByID := make(map[string]types.Question, len(assessment.Questions))
	for _, q := range assessment.Questions {
		questionsByID[q.QuestionID] = q
	}
	answersByQuestion := make(map[string]types.ReferenceAnswer, len(assessment.ReferenceAnswers))
	for _, answer := range assessment.ReferenceAnswers {
		answersByQuestion[answer.QuestionID] = answer
	}

	// Pair each response with its question and reference answer. Responses
	// to unknown questions are skipped with a warning.
	type scoringPair struct {
		question  types.Question
		reference types.ReferenceAnswer
		response  types.CandidateResponse
	}
	pairs := make([]scoringPair, 0, len(responses))
	for _, response := range responses {
		q, ok := questionsByID[response.QuestionID]
		if !ok {
			fmt.Printf("Warning: skipping response %s: unknown question %s\n",
				response.ResponseID, response.QuestionID)
			r.Log.Warn("response references unknown question",
				zap.String("response_id", response.ResponseID),
				zap.String("question_id", response.QuestionID),
			)
			continue
		}
		answer, ok := answersByQuestion[response.QuestionID]
		if !ok {
			fmt.Printf("Warning: skipping response %s: question %s has no reference answer\n",
				response.ResponseID, response.QuestionID)
			continue
		}
		pairs = append(pairs, scoringPair{question: q, reference: answer, response: response})
	}

	fmt.Printf("Step 3/4: Evaluating %d responses...\n", len(pairs))
	evaluator := evaluation.NewEvaluator(evaluation.NewLLMMatcher(r.Client), r.Log)

	results := make([]*types.QuestionEvaluation, len(pairs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLLMCalls)
	for i := range pairs {
		i := i
		g.Go(func() error {
			pair := pairs[i]
			result, err := evaluator.Evaluate(gCtx, &pair.question, &pair.reference, &pair.response)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("response evaluation failed: %w", err)
	}

	questionEvaluations := make([]types.QuestionEvaluation, len(results))
	for i, result := range results {
		questionEvaluations[i] = *result
	}

	fmt.Printf("Step 4/4: Aggregating results...\n")
	aggregated := evaluation.Aggregate(
		assessment.AssessmentID,
		assessment.CandidateID,
		questionEvaluations,
		questionsByID,
	)

	if r.Store != nil {
		if err := r.Store.SaveEvaluation(ctx, aggregated); err != nil {
			fmt.Printf("Warning: failed to save evaluation: %v\n", err)
		}
	}
	if opts.OutputDir != "" {
		path := filepath.Join(opts.OutputDir, aggregated.EvaluationID+".json")
		if err := writeJSON(path, aggregated); err != nil {
			return nil, fmt.Errorf("writing evaluation artifact failed: %w", err)
		}
		fmt.Printf("Evaluation written to %s\n", path)
	}

	if r.Verbose {
		r.Printer.PrintEvaluation(aggregated)
	}
	fmt.Printf("Done! Overall score: %.1f\n", aggregated.OverallScore)
	return aggregated, nil
}

func (r *Runner) loadAssessment(ctx context.Context, opts EvaluateOptions) (*types.Assessment, error) {
	if opts.AssessmentID != "" {
		if r.Store == nil {
			return nil, fmt.Errorf("assessment ID %s given but no database configured", opts.AssessmentID)
		}
		return r.Store.LoadAssessment(ctx, opts.AssessmentID)
	}

	data, err := os.ReadFile(opts.AssessmentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read assessment file: %w", err)
	}
	var assessment types.Assessment
	if err := json.Unmarshal(data, &assessment); err != nil {
		return nil, fmt.Errorf("failed to parse assessment JSON: %w", err)
	}
	if assessment.AssessmentID == "" {
		return nil, fmt.Errorf("assessment file %s has no assessment_id", opts.AssessmentPath)
	}
	return &assessment, nil
}

// loadResponses reads and validates a responses file. Responses missing a
// candidate ID inherit the assessment's.
func loadResponses(path, candidateID string) ([]types.CandidateResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses file: %w", err)
	}
	if err := schemas.ValidateResponses(data); err != nil {
		return nil, err
	}
	var responses []types.CandidateResponse
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("failed to parse responses JSON: %w", err)
	}
	for i := range responses {
		if responses[i].ResponseID == "" {
			responses[i].ResponseID = fmt.Sprintf("response-%d", i+1)
		}
		if responses[i].CandidateID == "" {
			responses[i].CandidateID = candidateID
		}
	}
	return responses, nil
}
