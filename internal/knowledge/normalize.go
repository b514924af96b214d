// Package knowledge loads and normalizes knowledge-base files.
package knowledge

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

// NormalizeKnowledgeBase trims every string, drops blank list entries,
// duplicate skills and entries whose fields are all empty, and replaces nil
// slices with empty ones so downstream code never sees a missing field.
func NormalizeKnowledgeBase(kb *types.KnowledgeBase) error {
	kb.Name = strings.TrimSpace(kb.Name)
	kb.Contact = types.Contact{
		Email:    strings.TrimSpace(kb.Contact.Email),
		Phone:    strings.TrimSpace(kb.Contact.Phone),
		GitHub:   strings.TrimSpace(kb.Contact.GitHub),
		LinkedIn: strings.TrimSpace(kb.Contact.LinkedIn),
	}

	kb.Skills = NormalizeSkills(kb.Skills)
	kb.Projects = normalizeProjects(kb.Projects)
	kb.Experience = normalizeExperience(kb.Experience)
	kb.Certificates = normalizeCertificates(kb.Certificates)
	kb.Education = normalizeEducation(kb.Education)

	if kb.Name == "" && len(kb.Skills) == 0 && len(kb.Projects) == 0 && len(kb.Experience) == 0 &&
		len(kb.Certificates) == 0 && len(kb.Education) == 0 {
		return &NormalizationError{Message: "knowledge base has no content"}
	}
	return nil
}

// NormalizeSkills trims skill names, skipping blanks and exact duplicates.
// The first occurrence keeps its position.
func NormalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))

	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, exists := seen[skill]; exists {
			continue
		}
		seen[skill] = struct{}{}
		normalized = append(normalized, skill)
	}

	return normalized
}

// cleanList trims entries and drops blanks
func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return cleaned
}

func normalizeProjects(projects []types.Project) []types.Project {
	out := make([]types.Project, 0, len(projects))
	for _, p := range projects {
		p = types.Project{
			Name:        strings.TrimSpace(p.Name),
			Description: strings.TrimSpace(p.Description),
			Tech:        cleanList(p.Tech),
			Tags:        cleanList(p.Tags),
		}
		if p.Name == "" && p.Description == "" && len(p.Tech) == 0 && len(p.Tags) == 0 {
			continue
		}
		out = append(out, p)
	}
	return out
}

func normalizeExperience(experience []types.Experience) []types.Experience {
	out := make([]types.Experience, 0, len(experience))
	for _, e := range experience {
		e = types.Experience{
			Role:        strings.TrimSpace(e.Role),
			Company:     strings.TrimSpace(e.Company),
			Duration:    strings.TrimSpace(e.Duration),
			Description: strings.TrimSpace(e.Description),
			Impact:      cleanList(e.Impact),
			Tags:        cleanList(e.Tags),
		}
		if e.Role == "" && e.Company == "" && e.Duration == "" && e.Description == "" &&
			len(e.Impact) == 0 && len(e.Tags) == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}

func normalizeCertificates(certs []types.Certificate) []types.Certificate {
	out := make([]types.Certificate, 0, len(certs))
	for _, c := range certs {
		c = types.Certificate{
			Name:   strings.TrimSpace(c.Name),
			Issuer: strings.TrimSpace(c.Issuer),
			Year:   types.Year(strings.TrimSpace(string(c.Year))),
			Tags:   cleanList(c.Tags),
		}
		if c.Name == "" && c.Issuer == "" && c.Year == "" && len(c.Tags) == 0 {
			continue
		}
		out = append(out, c)
	}
	return out
}

func normalizeEducation(education []types.Education) []types.Education {
	out := make([]types.Education, 0, len(education))
	for _, e := range education {
		e = types.Education{
			Degree:     strings.TrimSpace(e.Degree),
			University: strings.TrimSpace(e.University),
			Year:       types.Year(strings.TrimSpace(string(e.Year))),
			Tags:       cleanList(e.Tags),
		}
		if e.Degree == "" && e.University == "" && e.Year == "" && len(e.Tags) == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}
