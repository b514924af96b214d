// Package selection picks and orders the knowledge-base entries relevant to a job description.
package selection

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/scoring"
	"github.com/jonathan/resume-tailor/internal/tokenize"
	"github.com/jonathan/resume-tailor/internal/types"
)

// ScoreSections reports the score of every ranked item in knowledge-base
// order, marking the ones present in result.
func ScoreSections(kb *types.KnowledgeBase, result *types.SelectionResult) types.SectionScores {
	if kb == nil {
		kb = &types.KnowledgeBase{}
	}
	if result == nil {
		result = &types.SelectionResult{}
	}
	jd := result.JobTokens

	return types.SectionScores{
		Projects: itemScores(jd, kb.Projects, scoring.ProjectFields, len(result.Projects), func(p types.Project) string {
			return p.Name
		}),
		Experience: itemScores(jd, kb.Experience, scoring.ExperienceFields, len(result.Experience), func(e types.Experience) string {
			return joinNonEmpty(", ", e.Role, e.Company)
		}),
		Certificates: itemScores(jd, kb.Certificates, scoring.CertificateFields, len(result.Certificates), func(c types.Certificate) string {
			return joinNonEmpty(", ", c.Name, c.Issuer)
		}),
	}
}

// itemScores scores items and flags the top `selected` entries under the
// same ordering rankSection uses.
func itemScores[T types.Item](jd tokenize.TokenSet, items []T, fields []string, selected int, label func(T) string) []types.ItemScore {
	scored := scoreAll(jd, items, fields)
	chosen := make(map[int]bool, selected)
	for _, s := range rankScored(scored, selected) {
		chosen[s.Index] = true
	}

	out := make([]types.ItemScore, 0, len(scored))
	for _, s := range scored {
		out = append(out, types.ItemScore{
			Index:    s.Index,
			Label:    label(s.Item),
			Score:    s.Score,
			Selected: chosen[s.Index],
		})
	}
	return out
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
