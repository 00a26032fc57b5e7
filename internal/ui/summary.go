package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderRunSummary builds the post-run report: a headline plus one table
// row per collected replacement, ordered by original value.
func RenderRunSummary(column string, replacements map[string]string, processed, offered, width int) string {
	var sections []string

	headline := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPass).
		Render(fmt.Sprintf("✓ Processed %d values in column %q (%d suggestions offered)",
			processed, column, offered))
	sections = append(sections, headline, "")

	if len(replacements) == 0 {
		sections = append(sections, RenderMuted("No replacements collected."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	keys := make([]string, 0, len(replacements))
	for key := range replacements {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, []string{key, replacements[key]})
	}

	summaryTable := table.New().
		Headers("Original", "Replacement").
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		Width(width).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TableHeaderStyle
			}
			style := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)
			if col == 0 {
				style = style.Bold(true).Foreground(ColorAccent)
			}
			return style
		})

	sections = append(sections, summaryTable.String())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
