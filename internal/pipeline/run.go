// Package pipeline provides the high-level orchestration for a tailoring run.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/ingestion"
	"github.com/jonathan/resume-tailor/internal/knowledge"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/selection"
	"github.com/jonathan/resume-tailor/internal/summary"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Pipeline step names used in progress events
const (
	StepLoad   = "load"
	StepSelect = "select"
	StepRender = "render"
	StepWrite  = "write"
	StepReport = "report"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for a tailoring run
type RunOptions struct {
	KnowledgeBasePath string
	JobSource         string // file path or http(s) URL
	Limits            types.Limits
	Format            string
	OutputPath        string // empty writes the resume to Stdout
	ReportPath        string // empty skips the report
	Verbose           bool
	Fetch             *fetch.Options
	Stdout            io.Writer
	OnProgress        ProgressCallback
}

// Inputs are the loaded knowledge base and job description
type Inputs struct {
	KnowledgeBase *types.KnowledgeBase
	JobText       string
	JobMetadata   *ingestion.Metadata
}

// Tailored is the in-memory outcome of selecting against one job description
type Tailored struct {
	Selection *types.SelectionResult
	Scores    types.SectionScores
	Summary   string
}

// RunResult holds everything a run produced
type RunResult struct {
	Inputs
	Tailored
	Output string
	Report *types.Report
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// LoadInputs reads the knowledge base and the job description concurrently.
func LoadInputs(ctx context.Context, kbPath, jobSource string, ingestOpts *ingestion.Options) (*Inputs, error) {
	if kbPath == "" {
		return nil, fmt.Errorf("knowledge base path is required")
	}
	if jobSource == "" {
		return nil, fmt.Errorf("job description source is required")
	}

	g, gCtx := errgroup.WithContext(ctx)

	var inputs Inputs
	var mu sync.Mutex

	g.Go(func() error {
		kb, err := knowledge.LoadKnowledgeBase(kbPath)
		if err != nil {
			return fmt.Errorf("failed to load knowledge base: %w", err)
		}
		mu.Lock()
		inputs.KnowledgeBase = kb
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		text, metadata, err := ingestion.Ingest(gCtx, jobSource, ingestOpts)
		if err != nil {
			return fmt.Errorf("failed to ingest job description: %w", err)
		}
		mu.Lock()
		inputs.JobText = text
		inputs.JobMetadata = metadata
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &inputs, nil
}

// Tailor selects, scores and summarizes kb against jobText. It does no I/O.
func Tailor(kb *types.KnowledgeBase, jobText string, limits types.Limits) *Tailored {
	result := selection.SelectRelevant(kb, jobText, limits)
	return &Tailored{
		Selection: result,
		Scores:    selection.ScoreSections(kb, result),
		Summary:   summary.MakeSummary(result.JobTokens, result.Skills, result.Projects, result.Experience, kb),
	}
}

// Run executes a full tailoring run: load, select, render, write and report.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if err := opts.Limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid limits: %w", err)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	printer := observability.NewPrinter(stdout)

	// Step 1: Load knowledge base and job description
	emitProgress(&opts, StepLoad, "Loading knowledge base and job description", nil)
	inputs, err := LoadInputs(ctx, opts.KnowledgeBasePath, opts.JobSource, &ingestion.Options{
		Fetch:   opts.Fetch,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	// Step 2: Select relevant content
	tailored := Tailor(inputs.KnowledgeBase, inputs.JobText, opts.Limits)
	emitProgress(&opts, StepSelect, "Selected relevant content", tailored.Selection)
	if opts.Verbose {
		if metadata, err := inputs.JobMetadata.ToJSON(); err == nil {
			log.Printf("[VERBOSE] Job description metadata: %s", metadata)
		}
		printer.PrintJobDescription(inputs.JobMetadata.JobSource(), tailored.Selection.JobTokens)
		printer.PrintScores(tailored.Scores)
		printer.PrintSelection(tailored.Selection)
	}

	// Step 3: Render
	output, err := rendering.Render(inputs.KnowledgeBase, tailored.Selection, tailored.Summary, opts.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to render resume: %w", err)
	}
	emitProgress(&opts, StepRender, "Rendered resume", nil)

	// Step 4: Write output
	if opts.OutputPath != "" {
		if err := rendering.WriteFile(opts.OutputPath, output); err != nil {
			return nil, err
		}
		emitProgress(&opts, StepWrite, fmt.Sprintf("Wrote %s", opts.OutputPath), nil)
	} else {
		if _, err := io.WriteString(stdout, output); err != nil {
			return nil, fmt.Errorf("failed to write resume: %w", err)
		}
	}

	// Step 5: Report
	report := types.NewReport(
		opts.KnowledgeBasePath,
		inputs.JobMetadata.JobSource(),
		opts.Limits,
		tailored.Selection,
		tailored.Scores,
		tailored.Summary,
	)
	report.Output = opts.OutputPath
	if opts.ReportPath != "" {
		if err := WriteReport(opts.ReportPath, report); err != nil {
			return nil, err
		}
		emitProgress(&opts, StepReport, fmt.Sprintf("Wrote report %s", opts.ReportPath), report.RunID)
	}

	return &RunResult{
		Inputs:   *inputs,
		Tailored: *tailored,
		Output:   output,
		Report:   report,
	}, nil
}

// WriteReport writes the run report as indented JSON, creating parent directories
func WriteReport(path string, report *types.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
