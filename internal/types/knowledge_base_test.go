// Package types provides type definitions for structured data used throughout the resume-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnowledgeBase_JSONUnmarshaling(t *testing.T) {
	jsonInput := `{
		"name": "Ada Lovelace",
		"contact": {"email": "ada@example.com", "github": "github.com/ada"},
		"skills": ["Go", "Python"],
		"projects": [
			{"name": "Engine", "description": "Analytical engine", "tech": ["Go"], "tags": ["compute"]}
		],
		"experience": [
			{"role": "Engineer", "company": "Babbage Ltd", "duration": "1842-1843", "impact": ["Wrote notes"]}
		],
		"certificates": [{"name": "CKA", "issuer": "CNCF", "year": 2022}],
		"education": [{"degree": "BSc", "university": "London", "year": "1835"}]
	}`

	var kb KnowledgeBase
	err := json.Unmarshal([]byte(jsonInput), &kb)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", kb.Name)
	assert.Equal(t, "ada@example.com", kb.Contact.Email)
	assert.Equal(t, "github.com/ada", kb.Contact.GitHub)
	assert.Equal(t, []string{"Go", "Python"}, kb.Skills)
	require.Len(t, kb.Projects, 1)
	assert.Equal(t, []string{"compute"}, kb.Projects[0].Tags)
	require.Len(t, kb.Experience, 1)
	assert.Equal(t, "Babbage Ltd", kb.Experience[0].Company)
	assert.Empty(t, kb.Experience[0].Description)
	require.Len(t, kb.Certificates, 1)
	assert.Equal(t, Year("2022"), kb.Certificates[0].Year)
	require.Len(t, kb.Education, 1)
	assert.Equal(t, Year("1835"), kb.Education[0].Year)
}

func TestYear_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Year
		wantErr  bool
	}{
		{name: "string", input: `"2021"`, expected: "2021"},
		{name: "number", input: `2021`, expected: "2021"},
		{name: "null", input: `null`, expected: ""},
		{name: "free text", input: `"Spring 2020"`, expected: "Spring 2020"},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y Year
			err := json.Unmarshal([]byte(tt.input), &y)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, y)
		})
	}
}

func TestProject_FieldLookup(t *testing.T) {
	p := Project{
		Name:        "Resume Tailor",
		Description: "CLI tool",
		Tech:        []string{"Go", "Cobra"},
		Tags:        []string{"cli"},
	}

	assert.Equal(t, "Resume Tailor", p.Field("name"))
	assert.Equal(t, "CLI tool", p.Field("description"))
	assert.Equal(t, "Go Cobra", p.Field("tech"))
	assert.Equal(t, []string{"cli"}, p.List("tags"))
	assert.Equal(t, "", p.Field("missing"))
	assert.Nil(t, p.List("missing"))
}

func TestExperience_FieldLookup(t *testing.T) {
	e := Experience{
		Role:        "SRE",
		Company:     "Acme",
		Duration:    "2020-2023",
		Description: "On-call",
		Impact:      []string{"Cut MTTR", "Automated deploys"},
		Tags:        []string{"kubernetes"},
	}

	assert.Equal(t, "SRE", e.Field("role"))
	assert.Equal(t, "Acme", e.Field("company"))
	assert.Equal(t, "2020-2023", e.Field("duration"))
	assert.Equal(t, "On-call", e.Field("description"))
	assert.Equal(t, "Cut MTTR Automated deploys", e.Field("impact"))
	assert.Equal(t, []string{"kubernetes"}, e.List("tags"))
	assert.Nil(t, e.List("tech"))
}

func TestCertificateAndEducation_FieldLookup(t *testing.T) {
	c := Certificate{Name: "CKA", Issuer: "CNCF", Year: "2022", Tags: []string{"k8s"}}
	assert.Equal(t, "CKA", c.Field("name"))
	assert.Equal(t, "CNCF", c.Field("issuer"))
	assert.Equal(t, "2022", c.Field("year"))
	assert.Equal(t, "k8s", c.Field("tags"))

	e := Education{Degree: "MSc", University: "ETH", Year: "2019"}
	assert.Equal(t, "MSc", e.Field("degree"))
	assert.Equal(t, "ETH", e.Field("university"))
	assert.Equal(t, "2019", e.Field("year"))
	assert.Nil(t, e.List("tags"))
}
