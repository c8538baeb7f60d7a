package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(24)

	ValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	OKStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)
)

// Result markers
var (
	markValid   = OKStyle.Render("✓")
	markInvalid = ErrorStyle.Render("✗")
)

// labeled renders one "label value" line
func labeled(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}
