// Package main provides the entry point for the resume_tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "resume_tailor",
		Short:         "Tailor a resume knowledge base to a job description",
		Long:          "Resume Tailor selects the skills, projects, experience and certificates from a knowledge base that are most relevant to a job description, and renders them as a resume.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newTailorCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newValidateKBCmd())

	return rootCmd
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
