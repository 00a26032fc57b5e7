package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"kgrefine/internal/pipeline"
)

// ReplacePrompt asks the operator to confirm one replacement at a time.
// It satisfies pipeline.Confirmer.
type ReplacePrompt struct{}

// Confirm shows a yes/no form for one suggested replacement. Keeping the
// original is the default. Esc or ctrl-c maps to pipeline.ErrAborted and
// ends the whole run.
func (ReplacePrompt) Confirm(position, total int, original, suggestion string) (bool, error) {
	question := fmt.Sprintf("[%d/%d] Replace %q with %q?", position, total, original, suggestion)

	// In non-interactive mode (e.g., CI/script), decline every suggestion.
	if !IsTerminal() {
		fmt.Fprintf(os.Stderr, "%s (non-interactive, keeping original)\n", question)
		return false, nil
	}

	var accepted bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Replace").
				Negative("Keep").
				Value(&accepted),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return false, pipeline.ErrAborted
		}
		return false, err
	}
	return accepted, nil
}
