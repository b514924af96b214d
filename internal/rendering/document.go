package rendering

import (
	"strings"

	"github.com/jonathan/resume-tailor/internal/types"
)

const (
	defaultName        = "Your Name"
	defaultEducation   = "Education"
	defaultCertificate = "Certificate"
)

// Document is the layout-ready view of a tailored resume. Values are raw;
// each format escapes them while rendering.
type Document struct {
	Name           string
	Contact        string
	Summary        string
	Skills         []string
	Experience     []ExperienceEntry
	Education      []string
	Projects       []ProjectEntry
	Certifications []string
}

// ExperienceEntry is one role block
type ExperienceEntry struct {
	Title       string
	Description string
	Impact      []string
}

// ProjectEntry is one project block
type ProjectEntry struct {
	Name        string
	Description string
	Tech        []string
}

// BuildDocument assembles the header from kb and the body from the selected
// entries in result.
func BuildDocument(kb *types.KnowledgeBase, result *types.SelectionResult, summary string) *Document {
	doc := &Document{
		Name:    defaultName,
		Summary: strings.TrimSpace(summary),
	}
	if kb != nil {
		if name := strings.TrimSpace(kb.Name); name != "" {
			doc.Name = name
		}
		doc.Contact = contactLine(kb.Contact)
	}
	if result == nil {
		return doc
	}

	doc.Skills = append(doc.Skills, result.Skills...)
	for _, exp := range result.Experience {
		doc.Experience = append(doc.Experience, ExperienceEntry{
			Title:       experienceTitle(exp),
			Description: exp.Description,
			Impact:      exp.Impact,
		})
	}
	for _, edu := range result.Education {
		doc.Education = append(doc.Education, educationLine(edu))
	}
	for _, p := range result.Projects {
		doc.Projects = append(doc.Projects, ProjectEntry{
			Name:        p.Name,
			Description: p.Description,
			Tech:        p.Tech,
		})
	}
	for _, c := range result.Certificates {
		doc.Certifications = append(doc.Certifications, certificateLine(c))
	}
	return doc
}

func contactLine(c types.Contact) string {
	return joinNonEmpty(" | ", c.Email, c.Phone, c.GitHub, c.LinkedIn)
}

// experienceTitle formats "<role>, <company> — <duration>", skipping empty parts.
func experienceTitle(e types.Experience) string {
	return joinNonEmpty(" — ", joinNonEmpty(", ", e.Role, e.Company), e.Duration)
}

func educationLine(e types.Education) string {
	line := joinNonEmpty(" — ", e.Degree, e.University)
	if line == "" {
		line = defaultEducation
	}
	return withYear(line, string(e.Year))
}

func certificateLine(c types.Certificate) string {
	line := joinNonEmpty(" — ", c.Name, c.Issuer)
	if line == "" {
		line = defaultCertificate
	}
	return withYear(line, string(c.Year))
}

func withYear(line, year string) string {
	if year = strings.TrimSpace(year); year != "" {
		return line + " (" + year + ")"
	}
	return line
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
