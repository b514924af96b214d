package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/jonathan/resume-tailor/internal/types"
)

// Output formats
const (
	FormatMarkdown = "markdown"
	FormatText     = "text"
	FormatLaTeX    = "latex"
)

// DefaultFormat is used when no format is requested
const DefaultFormat = FormatMarkdown

//go:embed templates/*.tmpl
var templateFS embed.FS

type formatSpec struct {
	file       string
	escape     func(string) string
	leftDelim  string
	rightDelim string
}

var formats = map[string]formatSpec{
	FormatMarkdown: {file: "templates/resume.md.tmpl", escape: EscapeMarkdown, leftDelim: "{{", rightDelim: "}}"},
	FormatText:     {file: "templates/resume.txt.tmpl", escape: identity, leftDelim: "{{", rightDelim: "}}"},
	// LaTeX braces collide with the default delimiters
	FormatLaTeX: {file: "templates/resume.tex.tmpl", escape: EscapeLaTeX, leftDelim: "<<", rightDelim: ">>"},
}

// Formats lists the supported output formats
func Formats() []string {
	return []string{FormatMarkdown, FormatText, FormatLaTeX}
}

// Extension returns the conventional file extension for a format
func Extension(format string) string {
	switch format {
	case FormatText:
		return ".txt"
	case FormatLaTeX:
		return ".tex"
	default:
		return ".md"
	}
}

// Render lays out the selected entries in the requested format.
// An empty format renders Markdown.
func Render(kb *types.KnowledgeBase, result *types.SelectionResult, summary, format string) (string, error) {
	return RenderDocument(BuildDocument(kb, result, summary), format)
}

// RenderDocument renders a prepared Document
func RenderDocument(doc *Document, format string) (string, error) {
	if format == "" {
		format = DefaultFormat
	}
	spec, ok := formats[format]
	if !ok {
		return "", &RenderError{
			Message: fmt.Sprintf("unknown format %q (supported: %s)", format, strings.Join(Formats(), ", ")),
		}
	}

	tmpl, err := parseTemplate(spec)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return "", &TemplateError{Template: spec.file, Op: "execute", Cause: err}
	}
	return buf.String(), nil
}

func parseTemplate(spec formatSpec) (*template.Template, error) {
	content, err := templateFS.ReadFile(spec.file)
	if err != nil {
		return nil, &TemplateError{Template: spec.file, Op: "read", Cause: err}
	}

	funcMap := template.FuncMap{
		"esc":  spec.escape,
		"join": strings.Join,
	}

	tmpl, err := template.New(filepath.Base(spec.file)).
		Delims(spec.leftDelim, spec.rightDelim).
		Funcs(funcMap).
		Parse(string(content))
	if err != nil {
		return nil, &TemplateError{Template: spec.file, Op: "parse", Cause: err}
	}
	return tmpl, nil
}

// WriteFile writes rendered content to path, creating parent directories
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &RenderError{
				Message: fmt.Sprintf("failed to create output directory %s", dir),
				Cause:   err,
			}
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &RenderError{
			Message: fmt.Sprintf("failed to write output file %s", path),
			Cause:   err,
		}
	}
	return nil
}

func identity(s string) string { return s }
