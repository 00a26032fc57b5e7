package ui

import "github.com/charmbracelet/lipgloss"

// Shared color palette
var (
	ColorAccent = lipgloss.Color("99")
	ColorPass   = lipgloss.Color("42")
	ColorMuted  = lipgloss.Color("241")
)

// Summary table styles
var (
	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Align(lipgloss.Center)

	TableBorderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
)

// RenderMuted paints s in the muted color when color is enabled.
func RenderMuted(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(s)
}
