// Package refine writes the audit files of a processing run: an OpenRefine
// operation history and the list of processed values.
package refine

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Operation is one OpenRefine mass-edit step. A file of these imports
// cleanly through OpenRefine's Undo/Redo > Apply dialog.
type Operation struct {
	Op           string       `json:"op"`
	EngineConfig EngineConfig `json:"engineConfig"`
	ColumnName   string       `json:"columnName"`
	Expression   string       `json:"expression"`
	Edits        []Edit       `json:"edits"`
	Description  string       `json:"description"`
}

// EngineConfig matches the row-based engine OpenRefine expects on
// mass-edit operations.
type EngineConfig struct {
	Facets []interface{} `json:"facets"`
	Mode   string        `json:"mode"`
}

// Edit maps one original cell value to its replacement.
type Edit struct {
	From      []string `json:"from"`
	FromBlank bool     `json:"fromBlank"`
	FromError bool     `json:"fromError"`
	To        string   `json:"to"`
}

// Operations builds one mass-edit operation per replacement pair,
// ordered by original value.
func Operations(column string, replacements map[string]string) []Operation {
	keys := make([]string, 0, len(replacements))
	for key := range replacements {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ops := make([]Operation, 0, len(keys))
	for _, from := range keys {
		ops = append(ops, Operation{
			Op:           "core/mass-edit",
			EngineConfig: EngineConfig{Facets: []interface{}{}, Mode: "row-based"},
			ColumnName:   column,
			Expression:   "value",
			Edits: []Edit{{
				From: []string{from},
				To:   replacements[from],
			}},
			Description: fmt.Sprintf("Mass edit cells in column %s", column),
		})
	}
	return ops
}

// WriteOperations writes the OpenRefine operation history file for the
// collected replacements.
func WriteOperations(path, column string, replacements map[string]string) error {
	data, err := json.MarshalIndent(Operations(column, replacements), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling OpenRefine operations: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// WriteProcessedValues writes the values a run worked through, so a later
// run can skip them via the ignore file.
func WriteProcessedValues(path string, values []string) error {
	// Always write an array, never null.
	if values == nil {
		values = []string{}
	}
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling processed values: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadIgnoreValues loads the optional ignore list, a JSON array of values
// that skip the Knowledge Graph entirely. An empty path yields an empty
// set.
func ReadIgnoreValues(path string) (map[string]bool, error) {
	ignore := make(map[string]bool)
	if path == "" {
		return ignore, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing ignore values file: %w", err)
	}
	for _, value := range values {
		ignore[value] = true
	}
	return ignore, nil
}
