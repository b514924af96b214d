// Package selection picks and orders the knowledge-base entries relevant to a job description.
package selection

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/tokenize"
)

// matchSkills selects skills in two passes, always in knowledge-base order.
// Pass one keeps skills whose whole lower-cased name is a job token. Pass two,
// run only while under the limit, adds remaining skills sharing any token
// with the job description. The combined list is truncated to limit.
func matchSkills(jd tokenize.TokenSet, skills []string, limit int) []string {
	limit = max(limit, 0)
	matched := make([]string, 0, min(len(skills), limit))
	seen := make(map[string]bool, len(skills))

	for _, skill := range skills {
		if seen[skill] {
			continue
		}
		if jd.Has(strings.ToLower(skill)) {
			matched = append(matched, skill)
			seen[skill] = true
		}
	}

	if len(matched) < limit {
		for _, skill := range skills {
			if seen[skill] {
				continue
			}
			if tokenize.Tokenize(skill).Intersects(jd) {
				matched = append(matched, skill)
				seen[skill] = true
			}
		}
	}

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}
