// Package rendering lays out a tailored resume as Markdown, plain text or LaTeX.
package rendering

import "fmt"

// TemplateError reports a failure to read, parse or execute a format template
type TemplateError struct {
	Template string // embedded template path
	Op       string // "read", "parse" or "execute"
	Cause    error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %s failed: %v", e.Template, e.Op, e.Cause)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a rendering failure outside template execution,
// such as an unsupported format or an unwritable output path
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
