// Package ingestion reads job descriptions from files and URLs into clean text.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-tailor/internal/fetch"
)

var (
	// ErrFileNotFound is returned when a job description file does not exist
	ErrFileNotFound = errors.New("file not found")
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = errors.New("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = errors.New("content extraction failed")
)

// Options configures ingestion
type Options struct {
	Fetch   *fetch.Options
	Verbose bool
}

// Ingest reads a job description from source, which is an http(s) URL, an
// .html/.htm file, or a plain-text file, and returns cleaned text.
func Ingest(ctx context.Context, source string, opts *Options) (string, *Metadata, error) {
	if opts == nil {
		opts = &Options{}
	}
	if fetch.IsURL(source) {
		return IngestFromURL(ctx, source, opts)
	}
	return IngestFromFile(source, opts.Verbose)
}

// IngestFromURL fetches a job posting page and extracts its main text
func IngestFromURL(ctx context.Context, urlStr string, opts *Options) (string, *Metadata, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] URL: %s (platform: %s)", urlStr, fetch.DetectPlatform(urlStr))
	}

	result, err := fetch.URL(ctx, urlStr, opts.Fetch)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes (%s)", len(result.HTML), result.ContentType)
	}

	text, err := extractHTML(result.HTML, urlStr)
	if err != nil {
		return "", nil, err
	}
	if opts.Verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	metadata := NewMetadata(text, urlStr, FormatURL)
	metadata.ContentType = result.ContentType
	return text, metadata, nil
}

// IngestFromFile reads a job description file. Files ending in .html or
// .htm are reduced to their main text; anything else is read as text.
func IngestFromFile(path string, verbose bool) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	if isHTMLFile(path) {
		text, err := extractHTML(string(content), "")
		if err != nil {
			return "", nil, err
		}
		if verbose {
			log.Printf("[VERBOSE] Extracted %d chars from HTML file %s", len(text), path)
		}
		return text, NewMetadata(text, path, FormatHTML), nil
	}

	text := CleanText(string(content))
	if verbose {
		log.Printf("[VERBOSE] Read %d chars from %s", len(text), path)
	}
	return text, NewMetadata(text, path, FormatText), nil
}

// extractHTML reduces a page to its posting text using the selectors of
// the job board source came from, if any.
func extractHTML(html, source string) (string, error) {
	content, noise := fetch.SelectorsFor(source)
	text, err := fetch.ExtractMainText(html, content, noise...)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	return CleanText(text), nil
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}
