package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKnowledgeBase = `{
	"name": "Jordan Doe",
	"contact": {"email": "jordan@example.com"},
	"skills": ["Go", "Python", "Kubernetes", "Rust"],
	"projects": [
		{"name": "kube-autoscaler", "description": "Autoscaler for clusters", "tech": ["Go"], "tags": ["kubernetes"]}
	],
	"experience": [
		{"role": "Backend Engineer", "company": "Cloudy", "duration": "2021 - Present", "impact": ["Cut p99 latency by 40%"]}
	],
	"certificates": [
		{"name": "CKA", "issuer": "CNCF", "year": 2023}
	],
	"education": [
		{"degree": "BSc Computer Science", "university": "State U", "year": "2018"}
	]
}`

const testJobDescription = "Backend engineer: Go, Kubernetes, distributed systems; Python is a plus\n"

func writeInputs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	kbPath := filepath.Join(dir, "kb.json")
	jdPath := filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(kbPath, []byte(testKnowledgeBase), 0644))
	require.NoError(t, os.WriteFile(jdPath, []byte(testJobDescription), 0644))
	return kbPath, jdPath
}

func TestRun_WritesOutputAndReport(t *testing.T) {
	kbPath, jdPath := writeInputs(t)
	outDir := t.TempDir()
	outPath := filepath.Join(outDir, "out", "resume.md")
	reportPath := filepath.Join(outDir, "out", "report.json")

	var events []ProgressEvent
	var stdout bytes.Buffer
	result, err := Run(context.Background(), RunOptions{
		KnowledgeBasePath: kbPath,
		JobSource:         jdPath,
		Limits:            types.DefaultLimits(),
		Format:            rendering.FormatMarkdown,
		OutputPath:        outPath,
		ReportPath:        reportPath,
		Stdout:            &stdout,
		OnProgress:        func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, result.Output, string(data))
	assert.True(t, strings.HasPrefix(result.Output, "# Jordan Doe"))
	assert.Empty(t, stdout.String())

	assert.Contains(t, result.Selection.Skills, "Go")
	assert.NotContains(t, result.Selection.Skills, "Rust")
	require.Len(t, result.Selection.Projects, 1)
	require.Len(t, result.Selection.Experience, 1)
	assert.Empty(t, result.Selection.Certificates)
	assert.Len(t, result.Selection.Education, 1)
	assert.NotEmpty(t, result.Summary)

	reportData, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report types.Report
	require.NoError(t, json.Unmarshal(reportData, &report))
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, kbPath, report.KnowledgeBase)
	assert.Equal(t, jdPath, report.JobDescription.Source)
	assert.Equal(t, outPath, report.Output)
	assert.Equal(t, 1, report.Counts.Projects)
	assert.Equal(t, 0, report.Counts.Certificates)
	require.Len(t, report.Scores.Certificates, 1)
	assert.False(t, report.Scores.Certificates[0].Selected)

	var steps []string
	for _, e := range events {
		steps = append(steps, e.Step)
	}
	assert.Equal(t, []string{StepLoad, StepSelect, StepRender, StepWrite, StepReport}, steps)
}

func TestRun_PrintsToStdoutWithoutOutputPath(t *testing.T) {
	kbPath, jdPath := writeInputs(t)

	var stdout bytes.Buffer
	result, err := Run(context.Background(), RunOptions{
		KnowledgeBasePath: kbPath,
		JobSource:         jdPath,
		Limits:            types.DefaultLimits(),
		Format:            rendering.FormatText,
		Stdout:            &stdout,
	})
	require.NoError(t, err)

	assert.Equal(t, result.Output, stdout.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "Jordan Doe\n"))
}

func TestRun_Verbose(t *testing.T) {
	kbPath, jdPath := writeInputs(t)

	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	var stdout bytes.Buffer
	_, err := Run(context.Background(), RunOptions{
		KnowledgeBasePath: kbPath,
		JobSource:         jdPath,
		Limits:            types.DefaultLimits(),
		OutputPath:        filepath.Join(t.TempDir(), "resume.md"),
		Verbose:           true,
		Stdout:            &stdout,
	})
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "[VERBOSE] Job description metadata:")
	assert.Contains(t, logs.String(), `"source": "`+jdPath+`"`)

	assert.Contains(t, stdout.String(), "JOB DESCRIPTION")
	assert.Contains(t, stdout.String(), "RELEVANCE SCORES")
	assert.Contains(t, stdout.String(), "SELECTED CONTENT")
}

func TestRun_Errors(t *testing.T) {
	kbPath, jdPath := writeInputs(t)

	tests := []struct {
		name        string
		opts        RunOptions
		errorString string
	}{
		{
			name:        "missing knowledge base",
			opts:        RunOptions{KnowledgeBasePath: "/nonexistent/kb.json", JobSource: jdPath, Limits: types.DefaultLimits()},
			errorString: "failed to load knowledge base",
		},
		{
			name:        "missing job description",
			opts:        RunOptions{KnowledgeBasePath: kbPath, JobSource: "/nonexistent/jd.txt", Limits: types.DefaultLimits()},
			errorString: "failed to ingest job description",
		},
		{
			name:        "unknown format",
			opts:        RunOptions{KnowledgeBasePath: kbPath, JobSource: jdPath, Limits: types.DefaultLimits(), Format: "docx"},
			errorString: "unknown format",
		},
		{
			name:        "negative limit",
			opts:        RunOptions{KnowledgeBasePath: kbPath, JobSource: jdPath, Limits: types.Limits{Skills: -1}},
			errorString: "invalid limits",
		},
		{
			name:        "empty job source",
			opts:        RunOptions{KnowledgeBasePath: kbPath, Limits: types.DefaultLimits()},
			errorString: "job description source is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Stdout = &bytes.Buffer{}
			_, err := Run(context.Background(), tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestTailor_NoIO(t *testing.T) {
	kb := &types.KnowledgeBase{
		Skills:   []string{"Go", "Java"},
		Projects: []types.Project{{Name: "api", Tags: []string{"go"}}},
	}

	tailored := Tailor(kb, "We write Go", types.DefaultLimits())

	assert.Equal(t, []string{"Go"}, tailored.Selection.Skills)
	require.Len(t, tailored.Scores.Projects, 1)
	assert.True(t, tailored.Scores.Projects[0].Selected)
	assert.NotEmpty(t, tailored.Summary)
}

func TestWriteReport_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	report := types.NewReport("kb.json", types.JobSource{Source: "jd.txt"}, types.DefaultLimits(), nil, types.SectionScores{}, "")

	require.NoError(t, WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"run_id"`)
}
