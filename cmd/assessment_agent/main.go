// Package main provides the entry point for the assessment agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assessment_agent",
	Short: "Candidate assessment generation and evaluation pipeline",
	Long:  "Assessment Agent analyzes candidate resumes against job descriptions, generates tailored online assessments from a question template catalog, and scores candidate responses against synthesized reference answers.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
