package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/assessment-agent/internal/config"
	"github.com/jonathan/assessment-agent/internal/pipeline"
)

var evaluateCommand = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate candidate responses against an assessment",
	Long: `Scores each candidate response against the assessment's reference
answer rubric and aggregates the results into an overall evaluation with
strengths and areas for improvement.

The assessment is loaded from the database by --assessment-id, or from a
JSON artifact file with --assessment.`,
	RunE: runEvaluateCmd,
}

var (
	evaluateConfigPath     string
	evaluateAssessmentID   string
	evaluateAssessmentPath string
	evaluateResponses      string
	evaluateOutput         string
	evaluateAPIKey         string
	evaluateReasoningModel string
	evaluateDatabaseURL    string
	evaluateVerbose        bool
	evaluateLogJSON        bool
	evaluateDebug          bool
)

func init() {
	evaluateCommand.Flags().StringVar(&evaluateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	evaluateCommand.Flags().StringVar(&evaluateAssessmentID, "assessment-id", "", "Assessment ID to load from the database (mutually exclusive with --assessment)")
	evaluateCommand.Flags().StringVar(&evaluateAssessmentPath, "assessment", "", "Path to assessment JSON artifact (mutually exclusive with --assessment-id)")
	evaluateCommand.Flags().StringVar(&evaluateResponses, "responses", "", "Path to candidate responses JSON file")
	evaluateCommand.Flags().StringVarP(&evaluateOutput, "output", "o", "", "Directory for the evaluation artifact")
	evaluateCommand.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Print detailed pipeline output")
	evaluateCommand.Flags().BoolVar(&evaluateLogJSON, "log-json", false, "Emit logs as JSON")
	evaluateCommand.Flags().BoolVar(&evaluateDebug, "debug", false, "Enable debug logging")

	evaluateCommand.Flags().StringVar(&evaluateAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	evaluateCommand.Flags().StringVar(&evaluateReasoningModel, "reasoning-model", "", "Model for response evaluation")
	evaluateCommand.Flags().StringVar(&evaluateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(evaluateCommand)
}

func runEvaluateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(evaluateConfigPath, evaluateVerbose)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("output") {
		cfg.Output = evaluateOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = evaluateAPIKey
	}
	if cmd.Flags().Changed("reasoning-model") {
		cfg.ReasoningModel = evaluateReasoningModel
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = evaluateDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = evaluateVerbose
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = evaluateLogJSON
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = evaluateDebug
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Output: "output",
	})

	if evaluateAssessmentID == "" && evaluateAssessmentPath == "" {
		return fmt.Errorf("either --assessment-id or --assessment must be provided")
	}
	if evaluateAssessmentID != "" && evaluateAssessmentPath != "" {
		return fmt.Errorf("--assessment-id and --assessment are mutually exclusive; provide only one")
	}
	if evaluateResponses == "" {
		return fmt.Errorf("--responses is required")
	}

	runner, cleanup, err := buildRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = runner.EvaluateAssessment(ctx, pipeline.EvaluateOptions{
		AssessmentID:   evaluateAssessmentID,
		AssessmentPath: evaluateAssessmentPath,
		ResponsesPath:  evaluateResponses,
		OutputDir:      cfg.Output,
	})
	return err
}
