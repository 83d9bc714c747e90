package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// RenderMarkdown converts markdown to styled ANSI output wrapped to the
// terminal width. Outside a terminal, or when rendering fails, the raw
// markdown is returned unchanged.
func RenderMarkdown(md string) string {
	if !isTTY() {
		return md
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w >= 40 {
		width = w
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	// glamour adds trailing newlines; trim for tighter display.
	return strings.TrimRight(out, "\n")
}
