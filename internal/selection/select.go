// Package selection picks and orders the knowledge-base entries relevant to a job description.
package selection

import (
	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/tokenize"
	"github.com/jonathan/resume-tailor/internal/types"
)

// SelectRelevant tailors kb to jdText under limits. The knowledge base is
// not modified and the call keeps no state, so it is safe for concurrent use.
func SelectRelevant(kb *types.KnowledgeBase, jdText string, limits types.Limits) *types.SelectionResult {
	if kb == nil {
		kb = &types.KnowledgeBase{}
	}
	jd := tokenize.Tokenize(jdText)

	return &types.SelectionResult{
		Skills:       matchSkills(jd, kb.Skills, limits.Skills),
		Projects:     rankSection(jd, kb.Projects, scoring.ProjectFields, limits.Projects),
		Experience:   rankSection(jd, kb.Experience, scoring.ExperienceFields, limits.Experience),
		Certificates: rankSection(jd, kb.Certificates, scoring.CertificateFields, limits.Certificates),
		Education:    firstN(kb.Education, limits.Education),
		JobTokens:    jd,
	}
}

// SelectRelevantWithOverrides applies overrides on top of types.DefaultLimits
// before selecting. Categories without an override use the default cap.
func SelectRelevantWithOverrides(kb *types.KnowledgeBase, jdText string, overrides types.LimitOverrides) *types.SelectionResult {
	return SelectRelevant(kb, jdText, types.DefaultLimits().Merge(overrides))
}

// firstN returns a copy of the first n items
func firstN[T any](items []T, n int) []T {
	n = min(max(n, 0), len(items))
	out := make([]T, n)
	copy(out, items[:n])
	return out
}
