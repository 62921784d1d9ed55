package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/jonathan/assessment-agent/internal/config"
	"github.com/jonathan/assessment-agent/internal/llm"
	"github.com/jonathan/assessment-agent/internal/logger"
	"github.com/jonathan/assessment-agent/internal/pipeline"
	"github.com/jonathan/assessment-agent/internal/store"
)

// buildRunner assembles the shared pipeline dependencies from merged config.
// The returned cleanup function releases the LLM client and database pool.
func buildRunner(ctx context.Context, cfg config.Config) (*pipeline.Runner, func(), error) {
	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	llmConfig := llm.DefaultGeminiConfig()
	if cfg.FastModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierFast, cfg.FastModel)
	}
	if cfg.ReasoningModel != "" {
		llmConfig = llmConfig.WithModel(llm.TierReasoning, cfg.ReasoningModel)
	}

	client, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	var st *store.Store
	if cfg.DatabaseURL != "" {
		st, err = store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			st = nil
		} else if err := st.EnsureSchema(ctx); err != nil {
			fmt.Printf("Warning: failed to ensure database schema: %v\n", err)
		}
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	runner := pipeline.NewRunner(client, st, log, rng)
	runner.Verbose = cfg.Verbose

	cleanup := func() {
		_ = client.Close()
		if st != nil {
			st.Close()
		}
		_ = log.Sync()
	}
	return runner, cleanup, nil
}

// loadMergedConfig loads an optional config file and validates it; flag
// overrides are applied by the caller before defaults merge.
func loadMergedConfig(path string, verbose bool) (config.Config, error) {
	var cfg config.Config
	if path == "" {
		return cfg, nil
	}

	loaded, err := config.LoadConfig(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}
	if verbose {
		fmt.Printf("Loaded config from: %s\n", path)
	}
	return *loaded, nil
}
