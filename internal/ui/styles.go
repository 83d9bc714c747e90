// Package ui renders command output: lipgloss styles for status lines and a
// glamour renderer for skill markdown. Everything degrades to plain text
// when stdout is not a terminal.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorGreen  = lipgloss.Color("#22C55E")
	colorRed    = lipgloss.Color("#EF4444")
	colorYellow = lipgloss.Color("#EAB308")
	colorCyan   = lipgloss.Color("#06B6D4")
	colorDim    = lipgloss.Color("#6B7280")

	successStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(colorYellow)
	titleStyle   = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colorDim)
)

// isTTY is overridable in tests.
var isTTY = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func styled(s lipgloss.Style, text string) string {
	if !isTTY() {
		return text
	}
	return s.Render(text)
}

// Success renders a green checkmark line.
func Success(text string) string { return styled(successStyle, "✓ "+text) }

// Failure renders a red cross line.
func Failure(text string) string { return styled(errorStyle, "✗ "+text) }

// Warn renders a yellow warning line.
func Warn(text string) string { return styled(warnStyle, text) }

// Title renders a section heading.
func Title(text string) string { return styled(titleStyle, text) }

// Dim renders de-emphasized text.
func Dim(text string) string { return styled(dimStyle, text) }

// Glyph returns ✓ or ✗ for availability listings.
func Glyph(ok bool) string {
	if ok {
		return styled(successStyle, "✓")
	}
	return styled(errorStyle, "✗")
}
