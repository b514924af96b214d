// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"strings"
)

// KnowledgeBase is the candidate's full, untailored record of skills and history
type KnowledgeBase struct {
	Name         string        `json:"name"`
	Contact      Contact       `json:"contact"`
	Skills       []string      `json:"skills"`
	Projects     []Project     `json:"projects"`
	Experience   []Experience  `json:"experience"`
	Certificates []Certificate `json:"certificates"`
	Education    []Education   `json:"education"`
}

// Contact holds the header contact details
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// Item is a knowledge-base entry whose fields can be looked up by name.
// Unknown field names resolve to the empty value.
type Item interface {
	// Field returns the text of a field; list-valued fields are space-joined.
	Field(name string) string
	// List returns a list-valued field.
	List(name string) []string
}

// Project represents a side or professional project
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
	Tags        []string `json:"tags"`
}

// Field implements Item
func (p Project) Field(name string) string {
	switch name {
	case "name":
		return p.Name
	case "description":
		return p.Description
	default:
		return strings.Join(p.List(name), " ")
	}
}

// List implements Item
func (p Project) List(name string) []string {
	switch name {
	case "tech":
		return p.Tech
	case "tags":
		return p.Tags
	}
	return nil
}

// Experience represents a single role held at a company
type Experience struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	Duration    string   `json:"duration"`
	Description string   `json:"description"`
	Impact      []string `json:"impact"`
	Tags        []string `json:"tags"`
}

// Field implements Item
func (e Experience) Field(name string) string {
	switch name {
	case "role":
		return e.Role
	case "company":
		return e.Company
	case "duration":
		return e.Duration
	case "description":
		return e.Description
	default:
		return strings.Join(e.List(name), " ")
	}
}

// List implements Item
func (e Experience) List(name string) []string {
	switch name {
	case "impact":
		return e.Impact
	case "tags":
		return e.Tags
	}
	return nil
}

// Certificate represents a professional certification
type Certificate struct {
	Name   string   `json:"name"`
	Issuer string   `json:"issuer"`
	Year   Year     `json:"year,omitempty"`
	Tags   []string `json:"tags"`
}

// Field implements Item
func (c Certificate) Field(name string) string {
	switch name {
	case "name":
		return c.Name
	case "issuer":
		return c.Issuer
	case "year":
		return string(c.Year)
	default:
		return strings.Join(c.List(name), " ")
	}
}

// List implements Item
func (c Certificate) List(name string) []string {
	if name == "tags" {
		return c.Tags
	}
	return nil
}

// Education represents a degree or course of study
type Education struct {
	Degree     string   `json:"degree"`
	University string   `json:"university"`
	Year       Year     `json:"year,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// Field implements Item
func (e Education) Field(name string) string {
	switch name {
	case "degree":
		return e.Degree
	case "university":
		return e.University
	case "year":
		return string(e.Year)
	default:
		return strings.Join(e.List(name), " ")
	}
}

// List implements Item
func (e Education) List(name string) []string {
	if name == "tags" {
		return e.Tags
	}
	return nil
}

// Year is a free-form year string that also accepts a bare JSON number,
// so both "2021" and 2021 decode to "2021".
type Year string

// UnmarshalJSON implements json.Unmarshaler
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*y = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*y = Year(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*y = Year(n.String())
	return nil
}
