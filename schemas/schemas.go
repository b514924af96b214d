// Package schemas embeds the JSON Schemas for input artifacts.
package schemas

import _ "embed"

// KnowledgeBase is the JSON Schema for kb.json files.
//
//go:embed knowledge_base.schema.json
var KnowledgeBase string
