// Package tui provides the Bubble Tea preset preview for the gauge CLI.
//
// The preview is opt-in (--tui on the presets command) and read-only: it
// animates every built-in spinner preset and a sample bar so a profile
// author can pick glyphs without running a real workload.
package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// SetNoColor switches every style to the plain-text profile. Used by the
// --no-color flag; must be called before the program starts rendering.
func SetNoColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Color palette.
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	accentColor  = lipgloss.Color("#3B82F6") // Blue
	mutedColor   = lipgloss.Color("#6B7280") // Gray
)

// Styles for preview components.
var (
	// TitleStyle for the preview header.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// NameStyle for preset names.
	NameStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(12)

	// GlyphStyle for the animating glyph cell.
	GlyphStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// BarStyle for the sample bar line.
	BarStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
