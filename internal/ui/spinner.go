package ui

import "github.com/charmbracelet/huh/spinner"

// WithSpinner runs action behind a spinner when stdout is a terminal,
// and plainly otherwise so piped output stays clean.
func WithSpinner(title string, action func() error) error {
	if !IsTerminal() {
		return action()
	}
	var err error
	if spinErr := spinner.New().Title(title).Action(func() { err = action() }).Run(); spinErr != nil {
		return spinErr
	}
	return err
}
