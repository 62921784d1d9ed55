// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume         string `json:"resume,omitempty"`          // Path to candidate profile JSON
	JobDescription string `json:"job_description,omitempty"` // Path to job description JSON
	JobURL         string `json:"job_url,omitempty"`         // URL to fetch a job posting from
	Templates      string `json:"templates,omitempty"`       // Path to question template directory
	Output         string `json:"output,omitempty"`          // Directory for generated artifacts

	// Behavior
	NumQuestions   int    `json:"num_questions,omitempty"`   // Number of questions per assessment
	Seed           int64  `json:"seed,omitempty"`            // PRNG seed; 0 means time-seeded
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key
	FastModel      string `json:"fast_model,omitempty"`      // Model for extraction/classification
	ReasoningModel string `json:"reasoning_model,omitempty"` // Model for rubric synthesis/evaluation
	DatabaseURL    string `json:"database_url,omitempty"`    // PostgreSQL connection URL
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed pipeline output
	LogJSON        bool   `json:"log_json,omitempty"`        // JSON log encoding
	Debug          bool   `json:"debug,omitempty"`           // Debug log level
}

// DefaultNumQuestions applies when neither flag nor config sets a count.
const DefaultNumQuestions = 5

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Required fields are checked by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.JobDescription != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job_description' and 'job_url' are mutually exclusive")
	}

	if c.NumQuestions < 0 {
		return fmt.Errorf("config error: 'num_questions' must be non-negative")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.JobDescription != "" {
		if _, err := os.Stat(c.JobDescription); os.IsNotExist(err) {
			return fmt.Errorf("config error: job description file not found: %s", c.JobDescription)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JobDescription == "" {
		result.JobDescription = defaults.JobDescription
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Templates == "" {
		result.Templates = defaults.Templates
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.FastModel == "" {
		result.FastModel = defaults.FastModel
	}
	if result.ReasoningModel == "" {
		result.ReasoningModel = defaults.ReasoningModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.NumQuestions == 0 {
		if defaults.NumQuestions > 0 {
			result.NumQuestions = defaults.NumQuestions
		} else {
			result.NumQuestions = DefaultNumQuestions
		}
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	return result
}
