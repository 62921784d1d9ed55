package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/assessment-agent/internal/config"
	"github.com/jonathan/assessment-agent/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate an assessment for a candidate against a job description",
	Long: `Analyzes a candidate resume, selects question templates matching the
candidate's skills and the job's requirements, instantiates concrete
questions, and synthesizes reference answers with scoring rubrics.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	generateConfigPath     string
	generateResume         string
	generateJob            string
	generateJobURL         string
	generateTemplates      string
	generateOutput         string
	generateNumQuestions   int
	generateSeed           int64
	generateAPIKey         string
	generateFastModel      string
	generateReasoningModel string
	generateDatabaseURL    string
	generateVerbose        bool
	generateLogJSON        bool
	generateDebug          bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&generateResume, "resume", "r", "", "Path to candidate resume JSON file")
	generateCommand.Flags().StringVarP(&generateJob, "jd", "j", "", "Path to job description JSON file (mutually exclusive with --jd-url)")
	generateCommand.Flags().StringVar(&generateJobURL, "jd-url", "", "URL to fetch job posting from (mutually exclusive with --jd)")
	generateCommand.Flags().StringVarP(&generateTemplates, "templates", "t", "", "Path to question template directory")
	generateCommand.Flags().StringVarP(&generateOutput, "output", "o", "", "Directory for the assessment artifact")
	generateCommand.Flags().IntVarP(&generateNumQuestions, "num-questions", "n", 0, "Number of questions to generate")
	generateCommand.Flags().Int64Var(&generateSeed, "seed", 0, "PRNG seed for reproducible selection (0 = time-seeded)")
	generateCommand.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed pipeline output")
	generateCommand.Flags().BoolVar(&generateLogJSON, "log-json", false, "Emit logs as JSON")
	generateCommand.Flags().BoolVar(&generateDebug, "debug", false, "Enable debug logging")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCommand.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	generateCommand.Flags().StringVar(&generateFastModel, "fast-model", "", "Model for extraction tasks")
	generateCommand.Flags().StringVar(&generateReasoningModel, "reasoning-model", "", "Model for rubric synthesis and evaluation")

	// Database URL for entity persistence
	generateCommand.Flags().StringVar(&generateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(generateConfigPath, generateVerbose)
	if err != nil {
		return err
	}

	// CLI overrides take priority; only apply flags that were explicitly set.
	if cmd.Flags().Changed("resume") {
		cfg.Resume = generateResume
	}
	if cmd.Flags().Changed("jd") {
		cfg.JobDescription = generateJob
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JobURL = generateJobURL
	}
	if cmd.Flags().Changed("templates") {
		cfg.Templates = generateTemplates
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = generateOutput
	}
	if cmd.Flags().Changed("num-questions") {
		cfg.NumQuestions = generateNumQuestions
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = generateSeed
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = generateAPIKey
	}
	if cmd.Flags().Changed("fast-model") {
		cfg.FastModel = generateFastModel
	}
	if cmd.Flags().Changed("reasoning-model") {
		cfg.ReasoningModel = generateReasoningModel
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = generateDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = generateVerbose
	}
	if cmd.Flags().Changed("log-json") {
		cfg.LogJSON = generateLogJSON
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = generateDebug
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Templates: "data/templates",
		Output:    "output",
	})

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (via flag or config)")
	}
	if cfg.JobDescription == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --jd or --jd-url must be provided (via flag or config)")
	}
	if cfg.JobDescription != "" && cfg.JobURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}

	runner, cleanup, err := buildRunner(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = runner.GenerateAssessment(ctx, pipeline.GenerateOptions{
		ResumePath:   cfg.Resume,
		JobPath:      cfg.JobDescription,
		JobURL:       cfg.JobURL,
		TemplatesDir: cfg.Templates,
		OutputDir:    cfg.Output,
		NumQuestions: cfg.NumQuestions,
	})
	return err
}
