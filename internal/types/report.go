// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Report describes one tailoring run: inputs, limits, scores and what was kept
type Report struct {
	RunID          uuid.UUID      `json:"run_id"`
	GeneratedAt    time.Time      `json:"generated_at"`
	KnowledgeBase  string         `json:"knowledge_base"`
	JobDescription JobSource      `json:"job_description"`
	Limits         Limits         `json:"limits"`
	Counts         SelectedCounts `json:"counts"`
	Skills         []string       `json:"skills"`
	Scores         SectionScores  `json:"scores"`
	Summary        string         `json:"summary"`
	Output         string         `json:"output,omitempty"`
}

// JobSource identifies the job description a run was tailored to
type JobSource struct {
	Source     string `json:"source"`
	Hash       string `json:"hash"`
	TokenCount int    `json:"token_count"`
}

// SelectedCounts holds the number of selected entries per category
type SelectedCounts struct {
	Skills       int `json:"skills"`
	Projects     int `json:"projects"`
	Experience   int `json:"experience"`
	Certificates int `json:"certificates"`
	Education    int `json:"education"`
}

// NewReport creates a Report with a fresh run ID and timestamp
func NewReport(kbPath string, job JobSource, limits Limits, result *SelectionResult, scores SectionScores, summary string) *Report {
	report := &Report{
		RunID:          uuid.New(),
		GeneratedAt:    time.Now().UTC(),
		KnowledgeBase:  kbPath,
		JobDescription: job,
		Limits:         limits,
		Scores:         scores,
		Summary:        summary,
		Skills:         []string{},
	}
	if result != nil {
		report.Skills = result.Skills
		report.Counts = SelectedCounts{
			Skills:       len(result.Skills),
			Projects:     len(result.Projects),
			Experience:   len(result.Experience),
			Certificates: len(result.Certificates),
			Education:    len(result.Education),
		}
	}
	return report
}
