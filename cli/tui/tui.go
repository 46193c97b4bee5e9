package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the TUI for the given view type.
// Only the presets preview supports TUI mode; other commands reject --tui
// at flag-handling time, so an unknown view here is a programming error
// surfaced as a plain error.
func Run(viewType string) error {
	if !IsTUISupported(viewType) {
		return fmt.Errorf("TUI mode is not supported for %s", viewType)
	}

	p := tea.NewProgram(NewPreviewModel())
	_, err := p.Run()
	return err
}

// IsTUISupported returns true if the view type supports TUI mode.
func IsTUISupported(viewType string) bool {
	return viewType == "presets"
}
