// Package ingestion reads job descriptions from files and URLs into clean text.
package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jonathan/resume-tailor/internal/tokenize"
	"github.com/jonathan/resume-tailor/internal/types"
)

// Formats a job description can be ingested from
const (
	FormatText = "text"
	FormatHTML = "html"
	FormatURL  = "url"
)

// Metadata contains metadata about an ingested job description
type Metadata struct {
	Source      string `json:"source"`
	Format      string `json:"format"`
	ContentType string `json:"content_type,omitempty"`
	Timestamp   string `json:"timestamp"`   // RFC3339 format
	Hash        string `json:"hash"`        // SHA256 hex digest
	TokenCount  int    `json:"token_count"` // distinct tokens
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content, source, format string) *Metadata {
	return &Metadata{
		Source:     source,
		Format:     format,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Hash:       computeHash(content),
		TokenCount: tokenize.Tokenize(content).Len(),
	}
}

// JobSource converts the metadata into the report form
func (m *Metadata) JobSource() types.JobSource {
	if m == nil {
		return types.JobSource{}
	}
	return types.JobSource{
		Source:     m.Source,
		Hash:       m.Hash,
		TokenCount: m.TokenCount,
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
