// Package selection picks and orders the knowledge-base entries relevant to a job description.
package selection

import (
	"cmp"
	"slices"

	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/tokenize"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ScoredItem pairs an item with its relevance score and knowledge-base position
type ScoredItem[T types.Item] struct {
	Item  T
	Score int
	Index int
}

// scoreAll scores every item in knowledge-base order
func scoreAll[T types.Item](jd tokenize.TokenSet, items []T, fields []string) []ScoredItem[T] {
	scored := make([]ScoredItem[T], 0, len(items))
	for i, item := range items {
		scored = append(scored, ScoredItem[T]{
			Item:  item,
			Score: scoring.ScoreItem(jd, item, fields, scoring.DefaultTagsField),
			Index: i,
		})
	}
	return scored
}

// rankSection keeps items with a positive score, orders them by score
// descending with knowledge-base order breaking ties, and truncates to limit.
func rankSection[T types.Item](jd tokenize.TokenSet, items []T, fields []string, limit int) []T {
	top := rankScored(scoreAll(jd, items, fields), limit)

	ranked := make([]T, 0, len(top))
	for _, s := range top {
		ranked = append(ranked, s.Item)
	}
	return ranked
}

// rankScored filters out zero scores, sorts by (score desc, index asc) and
// truncates to limit. scored is not modified.
func rankScored[T types.Item](scored []ScoredItem[T], limit int) []ScoredItem[T] {
	kept := make([]ScoredItem[T], 0, len(scored))
	for _, s := range scored {
		if s.Score > 0 {
			kept = append(kept, s)
		}
	}

	slices.SortFunc(kept, func(a, b ScoredItem[T]) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	limit = max(limit, 0)
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
