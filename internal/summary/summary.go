// Package summary composes the one-paragraph resume summary from a selection.
package summary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/tokenize"
	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	// maxKeyTerms caps the skills named in the summary
	maxKeyTerms = 6
	// defaultRole is used when the lead experience entry has no role
	defaultRole = "Engineer"
)

// MakeSummary builds the summary paragraph. It leads with the top
// experience role (or a generic project line when there is no experience)
// and mentions the number of selected projects. Returns "" when both
// experience and projects are empty.
func MakeSummary(jd tokenize.TokenSet, skills []string, projects []types.Project, experience []types.Experience, _ *types.KnowledgeBase) string {
	terms := keyTerms(jd, skills)
	parts := make([]string, 0, 2)

	switch {
	case len(experience) > 0:
		role := experience[0].Role
		if role == "" {
			role = defaultRole
		}
		parts = append(parts, fmt.Sprintf("%s with hands-on work in %s.", role, joinOr(terms, "relevant tools")))
	case len(projects) > 0:
		parts = append(parts, fmt.Sprintf("%s with projects in %s.", defaultRole, joinOr(terms, "relevant areas")))
	}

	if len(projects) > 0 {
		parts = append(parts, fmt.Sprintf("Delivered %d relevant project(s).", len(projects)))
	}

	return strings.Join(parts, " ")
}

// keyTerms returns the sorted, distinct lower-cased skills present in jd,
// capped at maxKeyTerms.
func keyTerms(jd tokenize.TokenSet, skills []string) []string {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		if jd.Has(lower) {
			set[lower] = true
		}
	}

	terms := make([]string, 0, len(set))
	for term := range set {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	if len(terms) > maxKeyTerms {
		terms = terms[:maxKeyTerms]
	}
	return terms
}

func joinOr(terms []string, fallback string) string {
	if len(terms) == 0 {
		return fallback
	}
	return strings.Join(terms, ", ")
}
