// Package csvfile reads and rewrites the CSV files the tool operates on.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// Table is one parsed CSV file plus the index of the processed column.
type Table struct {
	Path    string
	Headers []string
	Rows    [][]string

	column int
}

// Read parses the CSV file at path and locates column in its header.
// Rows may be ragged; short rows read as empty cells.
func Read(path, column string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	colIdx := -1
	for i, col := range header {
		if strings.TrimSpace(col) == column {
			colIdx = i
			break
		}
	}
	if colIdx == -1 {
		return nil, fmt.Errorf("missing required column %q in %s", column, filepath.Base(path))
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV rows: %w", err)
	}
	return &Table{Path: path, Headers: header, Rows: rows, column: colIdx}, nil
}

// UniqueValues returns the distinct cell values of the processed column,
// in first-seen order. Missing cells count as the empty string.
func (t *Table) UniqueValues() []string {
	seen := make(map[string]bool)
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		v := t.cell(row)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

func (t *Table) cell(row []string) string {
	if t.column >= len(row) {
		return ""
	}
	return row[t.column]
}

// WriteWithReplacements writes the table to path, swapping cells of the
// processed column that exactly match a replacement key. Every row is
// normalized to the header width. Rewriting the source file takes a lock
// so two runs cannot interleave.
func (t *Table) WriteWithReplacements(path string, replacements map[string]string) error {
	if path == t.Path {
		lockPath := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".lock")
		lock := flock.New(lockPath)
		locked, err := lock.TryLock()
		if err != nil {
			return fmt.Errorf("acquiring rewrite lock: %w", err)
		}
		if !locked {
			return fmt.Errorf("another in-place rewrite is in progress")
		}
		defer func() { _ = lock.Unlock() }()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		out := make([]string, len(t.Headers))
		copy(out, row)
		if replacement, ok := replacements[out[t.column]]; ok {
			out[t.column] = replacement
		}
		if err := w.Write(out); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// OutputPath returns the default rewritten-CSV path next to src:
// data.csv becomes data_out.csv.
func OutputPath(src string) string {
	ext := filepath.Ext(src)
	stem := strings.TrimSuffix(filepath.Base(src), ext)
	return filepath.Join(filepath.Dir(src), stem+"_out"+ext)
}

// DerivedPath returns "<stem><suffix>" next to src, used for the default
// audit file paths (data.csv, "_processed.json" -> data_processed.json).
func DerivedPath(src, suffix string) string {
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(filepath.Dir(src), stem+suffix)
}
