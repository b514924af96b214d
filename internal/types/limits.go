// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Category names used in limits, reports and CLI flags
const (
	CategorySkills       = "skills"
	CategoryProjects     = "projects"
	CategoryExperience   = "experience"
	CategoryCertificates = "certificates"
	CategoryEducation    = "education"
)

// Limits caps how many entries of each category appear in the output
type Limits struct {
	Skills       int `json:"skills" validate:"gte=0"`
	Projects     int `json:"projects" validate:"gte=0"`
	Experience   int `json:"experience" validate:"gte=0"`
	Certificates int `json:"certificates" validate:"gte=0"`
	Education    int `json:"education" validate:"gte=0"`
}

// DefaultLimits returns the canonical default caps.
func DefaultLimits() Limits {
	return Limits{
		Skills:       15,
		Projects:     5,
		Experience:   4,
		Certificates: 7,
		Education:    2,
	}
}

// Validate validates the Limits using the validator.
func (l *Limits) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}

// LimitOverrides holds caller-supplied caps; nil entries keep the base value
type LimitOverrides struct {
	Skills       *int `json:"skills,omitempty" yaml:"skills,omitempty" toml:"skills,omitempty" validate:"omitempty,gte=0"`
	Projects     *int `json:"projects,omitempty" yaml:"projects,omitempty" toml:"projects,omitempty" validate:"omitempty,gte=0"`
	Experience   *int `json:"experience,omitempty" yaml:"experience,omitempty" toml:"experience,omitempty" validate:"omitempty,gte=0"`
	Certificates *int `json:"certificates,omitempty" yaml:"certificates,omitempty" toml:"certificates,omitempty" validate:"omitempty,gte=0"`
	Education    *int `json:"education,omitempty" yaml:"education,omitempty" toml:"education,omitempty" validate:"omitempty,gte=0"`
}

// Merge returns a copy of l with every non-nil override applied.
func (l Limits) Merge(o LimitOverrides) Limits {
	result := l
	if o.Skills != nil {
		result.Skills = *o.Skills
	}
	if o.Projects != nil {
		result.Projects = *o.Projects
	}
	if o.Experience != nil {
		result.Experience = *o.Experience
	}
	if o.Certificates != nil {
		result.Certificates = *o.Certificates
	}
	if o.Education != nil {
		result.Education = *o.Education
	}
	return result
}

// Merge layers other on top of o; entries set in other win.
func (o LimitOverrides) Merge(other LimitOverrides) LimitOverrides {
	result := o
	if other.Skills != nil {
		result.Skills = other.Skills
	}
	if other.Projects != nil {
		result.Projects = other.Projects
	}
	if other.Experience != nil {
		result.Experience = other.Experience
	}
	if other.Certificates != nil {
		result.Certificates = other.Certificates
	}
	if other.Education != nil {
		result.Education = other.Education
	}
	return result
}
