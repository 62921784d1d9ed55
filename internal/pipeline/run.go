// Package pipeline provides the high-level orchestration for assessment
// generation and evaluation.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/assessment-agent/internal/catalog"
	"github.com/jonathan/assessment-agent/internal/fetch"
	"github.com/jonathan/assessment-agent/internal/llm"
	"github.com/jonathan/assessment-agent/internal/observability"
	"github.com/jonathan/assessment-agent/internal/parsing"
	"github.com/jonathan/assessment-agent/internal/question"
	"github.com/jonathan/assessment-agent/internal/rubric"
	"github.com/jonathan/assessment-agent/internal/schemas"
	"github.com/jonathan/assessment-agent/internal/selection"
	"github.com/jonathan/assessment-agent/internal/skills"
	"github.com/jonathan/assessment-agent/internal/store"
	"github.com/jonathan/assessment-agent/internal/types"
)

// maxConcurrentLLMCalls caps parallel reference-answer and evaluation calls.
const maxConcurrentLLMCalls = 4

// Runner holds the shared pipeline dependencies.
type Runner struct {
	Client  llm.Client
	Store   *store.Store // nil disables persistence
	Log     *zap.Logger
	Rand    *rand.Rand
	Printer *observability.Printer
	Verbose bool
}

// NewRunner wires a Runner with safe defaults for optional dependencies.
func NewRunner(client llm.Client, st *store.Store, log *zap.Logger, rng *rand.Rand) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Runner{
		Client:  client,
		Store:   st,
		Log:     log,
		Rand:    rng,
		Printer: observability.NewPrinter(os.Stdout),
	}
}

// GenerateOptions holds configuration for one assessment generation run.
type GenerateOptions struct {
	ResumePath   string
	JobPath      string
	JobURL       string
	TemplatesDir string
	OutputDir    string
	NumQuestions int
}

// GenerateAssessment runs the full generation pipeline: analyze the
// candidate, select and instantiate questions, synthesize reference answers,
// and persist the assembled assessment.
func (r *Runner) GenerateAssessment(ctx context.Context, opts GenerateOptions) (*types.Assessment, error) {
	fmt.Printf("Step 1/6: Loading candidate profile from %s...\n", opts.ResumePath)
	profile, err := loadCandidateProfile(opts.ResumePath)
	if err != nil {
		return nil, fmt.Errorf("loading candidate profile failed: %w", err)
	}

	fmt.Printf("Step 2/6: Loading job description...\n")
	job, err := r.loadJobDescription(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("loading job description failed: %w", err)
	}

	fmt.Printf("Step 3/6: Analyzing candidate...\n")
	analyzer := skills.NewAnalyzer(r.Log)
	candidate, err := analyzer.Normalize(profile)
	if err != nil {
		return nil, fmt.Errorf("candidate analysis failed: %w", err)
	}
	if r.Verbose {
		r.Printer.PrintCandidate(candidate)
		r.Printer.PrintSkillMap(&candidate.SkillMap)
	}

	fmt.Printf("Step 4/6: Selecting question templates from %s...\n", opts.TemplatesDir)
	templates, err := catalog.NewLoader(r.Log).LoadDir(opts.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("loading question templates failed: %w", err)
	}

	assessment := &types.Assessment{
		AssessmentID: uuid.NewString(),
		CandidateID:  candidate.CandidateID,
		JobID:        uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
		Status:       types.StatusCreated,
		Questions:    []types.Question{},
		Metadata: map[string]any{
			"candidate_name": candidate.Profile.Name,
			"job_title":      job.Title,
			"company":        job.Company,
		},
	}

	selector := selection.NewSelector(r.Rand, r.Log)
	picked, err := selector.Select(templates, candidate, job, opts.NumQuestions)
	if err != nil {
		if errors.Is(err, selection.ErrNoSuitableTemplates) {
			fmt.Printf("Warning: no templates match this candidate and job; creating empty assessment.\n")
			r.Log.Warn("no suitable templates", zap.String("assessment_id", assessment.AssessmentID))
			return r.finishAssessment(ctx, assessment, candidate, opts.OutputDir)
		}
		return nil, fmt.Errorf("template selection failed: %w", err)
	}

	// Instantiation shares the seeded source and stays sequential so a fixed
	// seed reproduces the same assessment.
	instantiator := question.NewInstantiator(r.Rand)
	questions := make([]types.Question, 0, len(picked))
	for i := range picked {
		questions = append(questions, *instantiator.Instantiate(&picked[i], candidate))
	}
	if r.Verbose {
		r.Printer.PrintQuestions(questions)
	}

	fmt.Printf("Step 5/6: Synthesizing reference answers for %d questions...\n", len(questions))
	answers, kept, err := r.synthesizeAnswers(ctx, questions)
	if err != nil {
		return nil, err
	}
	assessment.Questions = kept
	assessment.ReferenceAnswers = answers

	fmt.Printf("Step 6/6: Saving assessment %s...\n", assessment.AssessmentID)
	return r.finishAssessment(ctx, assessment, candidate, opts.OutputDir)
}

// synthesizeAnswers fans out reference answer generation. A question whose
// answer cannot be synthesized is dropped with a warning rather than failing
// the whole assessment.
func (r *Runner) synthesizeAnswers(ctx context.Context, questions []types.Question) ([]types.ReferenceAnswer, []types.Question, error) {
	synthesizer := rubric.NewSynthesizer(r.Client, r.Log)

	results := make([]*types.ReferenceAnswer, len(questions))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLLMCalls)

	for i := range questions {
		i := i
		g.Go(func() error {
			answer, err := synthesizer.Synthesize(gCtx, &questions[i])
			if err != nil {
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				fmt.Printf("Warning: dropping question %s: %v\n", questions[i].QuestionID, err)
				r.Log.Warn("reference answer synthesis failed",
					zap.String("question_id", questions[i].QuestionID),
					zap.Error(err),
				)
				return nil
			}
			results[i] = answer
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("reference answer synthesis aborted: %w", err)
	}

	answers := make([]types.ReferenceAnswer, 0, len(questions))
	kept := make([]types.Question, 0, len(questions))
	for i, answer := range results {
		if answer == nil {
			continue
		}
		answers = append(answers, *answer)
		kept = append(kept, questions[i])
	}
	return answers, kept, nil
}

// finishAssessment persists the candidate and assessment, writes the output
// artifact, and prints the verbose summary.
func (r *Runner) finishAssessment(ctx context.Context, assessment *types.Assessment, candidate *types.NormalizedCandidate, outputDir string) (*types.Assessment, error) {
	if r.Store != nil {
		if err := r.Store.SaveCandidate(ctx, candidate); err != nil {
			fmt.Printf("Warning: failed to save candidate: %v\n", err)
		}
		if err := r.Store.SaveAssessment(ctx, assessment); err != nil {
			fmt.Printf("Warning: failed to save assessment: %v\n", err)
		}
	}

	if outputDir != "" {
		path := filepath.Join(outputDir, assessment.AssessmentID+".json")
		if err := writeJSON(path, assessment); err != nil {
			return nil, fmt.Errorf("writing assessment artifact failed: %w", err)
		}
		fmt.Printf("Assessment written to %s\n", path)
	}

	fmt.Printf("Done! Generated %d questions for %s.\n",
		len(assessment.Questions), candidate.Profile.Name)
	return assessment, nil
}

// loadJobDescription resolves the job input: a structured JSON file or a raw
// posting fetched from a URL and extracted with the fast model.
func (r *Runner) loadJobDescription(ctx context.Context, opts GenerateOptions) (*types.JobDescription, error) {
	if opts.JobURL != "" {
		fmt.Printf("Fetching job posting from %s...\n", opts.JobURL)
		text, err := fetch.JobPosting(ctx, opts.JobURL, nil)
		if err != nil {
			return nil, err
		}
		job, err := parsing.ExtractJobDescription(ctx, r.Client, text)
		if err != nil {
			return nil, err
		}
		// The extracted document passes the same gate as a file-provided one.
		encoded, err := json.Marshal(job)
		if err != nil {
			return nil, fmt.Errorf("failed to encode extracted job description: %w", err)
		}
		if err := schemas.ValidateJobDescription(encoded); err != nil {
			return nil, err
		}
		return job, nil
	}

	data, err := os.ReadFile(opts.JobPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read job description file: %w", err)
	}
	if err := schemas.ValidateJobDescription(data); err != nil {
		return nil, err
	}
	var job types.JobDescription
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job description JSON: %w", err)
	}
	job.RequiredSkills = parsing.NormalizeSkillTokens(job.RequiredSkills)
	job.PreferredSkills = parsing.NormalizeSkillTokens(job.PreferredSkills)
	return &job, nil
}

func loadCandidateProfile(path string) (*types.CandidateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResume(data); err != nil {
		return nil, err
	}
	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &profile, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
