// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-tailor/internal/tokenize"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// maxTokensToShow caps the job-token sample
	maxTokensToShow = 20
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

// PrintJobDescription outputs where the job description came from and a
// sample of the tokens it matched against.
func (p *Printer) PrintJobDescription(job types.JobSource, tokens tokenize.TokenSet) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:  %s\n", job.Source))
	if job.Hash != "" {
		sb.WriteString(fmt.Sprintf("Hash:    %s\n", truncate(job.Hash, 16)))
	}
	sb.WriteString(fmt.Sprintf("Tokens:  %d distinct\n", tokens.Len()))

	sorted := tokens.Sorted()
	if len(sorted) > 0 {
		sb.WriteString("\n")
		count := min(len(sorted), maxTokensToShow)
		line := ""
		for _, tok := range sorted[:count] {
			if line != "" && utf8.RuneCountInString(line)+len(tok)+1 > boxWidth-6 {
				sb.WriteString("  " + line + "\n")
				line = ""
			}
			if line != "" {
				line += " "
			}
			line += tok
		}
		if line != "" {
			sb.WriteString("  " + line + "\n")
		}
		if len(sorted) > maxTokensToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(sorted)-maxTokensToShow))
		}
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelection outputs the entries chosen for each section.
func (p *Printer) PrintSelection(result *types.SelectionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills (%d):\n", len(result.Skills)))
	if len(result.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("  %s\n", strings.Join(result.Skills, ", ")))
	}

	projects := make([]string, 0, len(result.Projects))
	for _, proj := range result.Projects {
		projects = append(projects, proj.Name)
	}
	writeList(&sb, "Projects", projects)

	experience := make([]string, 0, len(result.Experience))
	for _, exp := range result.Experience {
		experience = append(experience, strings.TrimSuffix(exp.Role+", "+exp.Company, ", "))
	}
	writeList(&sb, "Experience", experience)

	certs := make([]string, 0, len(result.Certificates))
	for _, cert := range result.Certificates {
		certs = append(certs, cert.Name)
	}
	writeList(&sb, "Certificates", certs)

	education := make([]string, 0, len(result.Education))
	for _, edu := range result.Education {
		education = append(education, edu.Degree)
	}
	writeList(&sb, "Education", education)

	p.printBox("SELECTED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}

func writeList(sb *strings.Builder, title string, items []string) {
	sb.WriteString(fmt.Sprintf("\n%s (%d):\n", title, len(items)))
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// PrintScores outputs every ranked item with its score; selected items are
// marked with a check.
func (p *Printer) PrintScores(scores types.SectionScores) {
	sections := []struct {
		title  string
		scores []types.ItemScore
	}{
		{"Projects", scores.Projects},
		{"Experience", scores.Experience},
		{"Certificates", scores.Certificates},
	}

	var sb strings.Builder
	for _, section := range sections {
		if len(section.scores) == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%s:\n", section.title))
		for _, s := range section.scores {
			mark := " "
			if s.Selected {
				mark = "✓"
			}
			label := s.Label
			if label == "" {
				label = fmt.Sprintf("#%d", s.Index)
			}
			sb.WriteString(fmt.Sprintf("  %s %3d  %s\n", mark, s.Score, label))
		}
	}

	if sb.Len() == 0 {
		return
	}
	p.printBox("RELEVANCE SCORES", strings.TrimSuffix(sb.String(), "\n"))
}
