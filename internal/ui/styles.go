// Package ui provides the terminal presentation layer: lipgloss styling,
// plain-text rendering for pipes, and the interactive message browser.
// It is a pure consumer of the search engine's query operations.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette. Plain ANSI green/red/white, matching a classic
// terminal mail reader look.
const (
	ColorGreen = "2"
	ColorRed   = "1"
	ColorWhite = "7"
	ColorGray  = "245"
)

// Styles holds all UI styles for rendering.
type Styles struct {
	Header  lipgloss.Style
	ID      lipgloss.Style
	Sender  lipgloss.Style
	Subject lipgloss.Style
	Date    lipgloss.Style
	Label   lipgloss.Style
	Body    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Dim     lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)),
		ID:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Sender:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
		Subject: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Date:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Body:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWhite)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// NoColorStyles returns unstyled components for plain mode.
func NoColorStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle(),
		ID:      lipgloss.NewStyle(),
		Sender:  lipgloss.NewStyle(),
		Subject: lipgloss.NewStyle(),
		Date:    lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle(),
		Body:    lipgloss.NewStyle(),
		Error:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Dim:     lipgloss.NewStyle(),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}

// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
