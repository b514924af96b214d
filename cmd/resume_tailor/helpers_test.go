package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testKnowledgeBase = `{
	"name": "Jordan Doe",
	"contact": {"email": "jordan@example.com", "github": "github.com/jdoe"},
	"skills": ["Go", "Python", "Kubernetes", "Rust", "SQL"],
	"projects": [
		{"name": "kube-autoscaler", "description": "Autoscaler for clusters", "tech": ["Go"], "tags": ["kubernetes"]},
		{"name": "ml-notebook", "description": "Notebook tooling", "tech": ["Python"]},
		{"name": "game", "description": "Toy renderer", "tech": ["Rust"]}
	],
	"experience": [
		{"role": "Backend Engineer", "company": "Cloudy", "duration": "2021 - Present", "impact": ["Cut p99 latency by 40%"]},
		{"role": "Barista", "company": "Cafe", "duration": "2015"}
	],
	"certificates": [
		{"name": "CKA", "issuer": "CNCF", "year": 2023, "tags": ["kubernetes"]}
	],
	"education": [
		{"degree": "BSc Computer Science", "university": "State U", "year": "2018"}
	]
}`

const testJobDescription = "Backend engineer: Go, Kubernetes, distributed systems and SQL; Python is a plus\n"

// executeCommand runs the CLI in-process and returns stdout and stderr
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFixtures writes a knowledge base and job description into a temp dir
func writeFixtures(t *testing.T) (dir, kbPath, jdPath string) {
	t.Helper()
	dir = t.TempDir()
	kbPath = filepath.Join(dir, "kb.json")
	jdPath = filepath.Join(dir, "jd.txt")
	require.NoError(t, os.WriteFile(kbPath, []byte(testKnowledgeBase), 0644))
	require.NoError(t, os.WriteFile(jdPath, []byte(testJobDescription), 0644))
	return dir, kbPath, jdPath
}
