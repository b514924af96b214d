package main

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/spf13/cobra"
)

type scoreFlags struct {
	inputFlags
	jsonOutput bool
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Show how every knowledge-base entry scores against a job description",
		Long:  "Scores each project, experience entry and certificate against the job description and marks the ones that fit under the limits. Nothing is rendered or written.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScore(cmd, f)
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Print scores as JSON")

	return cmd
}

func runScore(cmd *cobra.Command, f *scoreFlags) error {
	cfg, err := resolveConfig(cmd, &f.inputFlags, nil)
	if err != nil {
		return err
	}

	inputs, err := pipeline.LoadInputs(cmd.Context(), cfg.KB, cfg.JobSource(), &ingestion.Options{
		Fetch:   f.fetchOptions(),
		Verbose: cfg.Verbose,
	})
	if err != nil {
		return err
	}
	tailored := pipeline.Tailor(inputs.KnowledgeBase, inputs.JobText, cfg.EffectiveLimits())

	out := cmd.OutOrStdout()
	if f.jsonOutput {
		data, err := json.MarshalIndent(tailored.Scores, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal scores: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
		return nil
	}

	printer := observability.NewPrinter(out)
	if cfg.Verbose {
		printer.PrintJobDescription(inputs.JobMetadata.JobSource(), tailored.Selection.JobTokens)
	}
	printer.PrintScores(tailored.Scores)
	printer.PrintSelection(tailored.Selection)
	return nil
}
