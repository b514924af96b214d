// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/jonathan/resume-tailor/internal/tokenize"

// SelectionResult is the tailored subset of a KnowledgeBase for one job description
type SelectionResult struct {
	Skills       []string          `json:"skills"`
	Projects     []Project         `json:"projects"`
	Experience   []Experience      `json:"experience"`
	Certificates []Certificate     `json:"certificates"`
	Education    []Education       `json:"education"`
	JobTokens    tokenize.TokenSet `json:"-"`
}

// SectionScores lists the relevance score of every ranked item, in knowledge-base order
type SectionScores struct {
	Projects     []ItemScore `json:"projects"`
	Experience   []ItemScore `json:"experience"`
	Certificates []ItemScore `json:"certificates"`
}

// ItemScore is the score of a single knowledge-base item
type ItemScore struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Score    int    `json:"score"`
	Selected bool   `json:"selected"`
}
