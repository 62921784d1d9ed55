package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/assessment-agent/internal/pipeline"
)

var seedCommand = &cobra.Command{
	Use:   "seed",
	Short: "Write sample resume, job description, and template files",
	RunE:  runSeedCmd,
}

var seedDir string

func init() {
	seedCommand.Flags().StringVarP(&seedDir, "dir", "d", "data/sample", "Directory to write sample data into")
	rootCmd.AddCommand(seedCommand)
}

func runSeedCmd(_ *cobra.Command, _ []string) error {
	return pipeline.SeedSampleData(seedDir)
}
