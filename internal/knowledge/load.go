// Package knowledge loads and normalizes knowledge-base files.
package knowledge

import (
	"encoding/json"
	"fmt"
	"os"

	schemadefs "github.com/jonathan/resume-tailor/schemas"

	"github.com/jonathan/resume-tailor/internal/schemas"
	"github.com/jonathan/resume-tailor/internal/types"
)

// LoadKnowledgeBase loads a knowledge base from a JSON file, validates it
// against the embedded schema and normalizes it.
func LoadKnowledgeBase(path string) (*types.KnowledgeBase, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return ParseKnowledgeBase(content)
}

// ParseKnowledgeBase validates, decodes and normalizes knowledge-base JSON
func ParseKnowledgeBase(content []byte) (*types.KnowledgeBase, error) {
	if err := schemas.ValidateBytes(schemadefs.KnowledgeBase, content); err != nil {
		return nil, &LoadError{
			Message: "schema validation failed",
			Cause:   err,
		}
	}

	var kb types.KnowledgeBase
	if err := json.Unmarshal(content, &kb); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := NormalizeKnowledgeBase(&kb); err != nil {
		return nil, err
	}

	return &kb, nil
}
