package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-tailor/internal/config"
	"github.com/jonathan/resume-tailor/internal/pipeline"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/spf13/cobra"
)

type tailorFlags struct {
	inputFlags
	out    string
	format string
	report string
}

func newTailorCmd() *cobra.Command {
	f := &tailorFlags{}
	cmd := &cobra.Command{
		Use:   "tailor",
		Short: "Render a resume tailored to a job description",
		Long: `Loads the knowledge base and the job description, keeps the most relevant entries of each section, and renders them.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTailor(cmd, f)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "Output file or directory (prints to stdout when omitted)")
	cmd.Flags().StringVarP(&f.format, "format", "f", rendering.DefaultFormat, "Output format: "+strings.Join(rendering.Formats(), ", "))
	cmd.Flags().StringVarP(&f.report, "report", "r", "", "Write a JSON selection report to this path")

	return cmd
}

func runTailor(cmd *cobra.Command, f *tailorFlags) error {
	cfg, err := resolveConfig(cmd, &f.inputFlags, func(cfg *config.Config) {
		if cmd.Flags().Changed("out") {
			cfg.Out = f.out
		}
		if cmd.Flags().Changed("format") {
			cfg.Format = f.format
		}
		if cmd.Flags().Changed("report") {
			cfg.Report = f.report
		}
	})
	if err != nil {
		return err
	}
	cfg.Out = resolveOutputPath(cfg.Out, cfg.Format)

	out := cmd.OutOrStdout()
	result, err := pipeline.Run(cmd.Context(), pipeline.RunOptions{
		KnowledgeBasePath: cfg.KB,
		JobSource:         cfg.JobSource(),
		Limits:            cfg.EffectiveLimits(),
		Format:            cfg.Format,
		OutputPath:        cfg.Out,
		ReportPath:        cfg.Report,
		Verbose:           cfg.Verbose,
		Fetch:             f.fetchOptions(),
		Stdout:            out,
	})
	if err != nil {
		return err
	}

	if cfg.Out != "" {
		_, _ = fmt.Fprintf(out, "Successfully tailored resume\n")
		_, _ = fmt.Fprintf(out, "Resume: %s\n", cfg.Out)
		_, _ = fmt.Fprintf(out, "Selected: %d skills, %d projects, %d experience, %d certificates, %d education\n",
			result.Report.Counts.Skills,
			result.Report.Counts.Projects,
			result.Report.Counts.Experience,
			result.Report.Counts.Certificates,
			result.Report.Counts.Education,
		)
	}
	if cfg.Report != "" {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Report: %s (run %s)\n", cfg.Report, result.Report.RunID)
	}

	return nil
}

// resolveOutputPath names the resume file when out is a directory, using the
// extension of the output format.
func resolveOutputPath(out, format string) string {
	if out == "" {
		return ""
	}
	if strings.HasSuffix(out, string(os.PathSeparator)) {
		return filepath.Join(out, "resume"+rendering.Extension(format))
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, "resume"+rendering.Extension(format))
	}
	return out
}
