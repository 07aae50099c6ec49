package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordTable maps feature-name keywords to the skills they imply.
// Matching is a case-insensitive substring check against feature names.
// The table is data, not code, so it can be tuned without touching the engine.
type KeywordTable map[string][]string

// DefaultKeywordTable returns the built-in keyword-to-skills table.
func DefaultKeywordTable() KeywordTable {
	return KeywordTable{
		"ai":       {"ai-integration", "machine-learning"},
		"api":      {"backend", "api-design"},
		"ui":       {"frontend", "design"},
		"auth":     {"security", "backend"},
		"database": {"database", "backend"},
		"deploy":   {"devops", "infrastructure"},
		"test":     {"testing", "quality"},
		"search":   {"search", "backend"},
		"monitor":  {"observability", "devops"},
		"doc":      {"documentation", "communication"},
	}
}

// LoadKeywordTable reads a keyword table from a YAML file.
// An empty path returns the built-in defaults.
func LoadKeywordTable(path string) (KeywordTable, error) {
	if path == "" {
		return DefaultKeywordTable(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keyword table: %w", err)
	}

	table := KeywordTable{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse keyword table: %w", err)
	}

	if len(table) == 0 {
		return nil, fmt.Errorf("keyword table %s is empty", path)
	}

	return table, nil
}
