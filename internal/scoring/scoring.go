// Package scoring computes lexical relevance scores for knowledge-base items.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/tokenize"
	"github.com/jonathan/resume-tailor/internal/types"
)

// TagWeight is the score of each curated tag found in the job description
const TagWeight = 3

// DefaultTagsField is the item field holding curated tags
const DefaultTagsField = "tags"

// Fields scored per ranked category
var (
	ProjectFields     = []string{"description", "name", "tech"}
	ExperienceFields  = []string{"description", "role", "company"}
	CertificateFields = []string{"name", "issuer"}
)

// ScoreItem scores item against the job-description tokens.
// Each distinct tag present in jd adds TagWeight; tags are lower-cased and
// matched whole. Each field in fields adds one point per distinct token it
// shares with jd.
func ScoreItem(jd tokenize.TokenSet, item types.Item, fields []string, tagsField string) int {
	if len(jd) == 0 {
		return 0
	}

	score := TagWeight * tagMatches(jd, item.List(tagsField))
	for _, field := range fields {
		score += tokenize.Tokenize(item.Field(field)).IntersectCount(jd)
	}
	return score
}

// tagMatches counts distinct lower-cased tags present in jd
func tagMatches(jd tokenize.TokenSet, tags []string) int {
	seen := make(map[string]bool, len(tags))
	matches := 0
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		if jd.Has(lower) {
			matches++
		}
	}
	return matches
}
