package ui

import (
	"strings"
	"testing"
)

func withTTY(t *testing.T, tty bool) {
	t.Helper()
	old := isTTY
	isTTY = func() bool { return tty }
	t.Cleanup(func() { isTTY = old })
}

func TestStyled_PlainWhenNotTTY(t *testing.T) {
	withTTY(t, false)

	if got := Success("done"); got != "✓ done" {
		t.Errorf("expected plain text, got %q", got)
	}
	if got := Failure("broken"); got != "✗ broken" {
		t.Errorf("expected plain text, got %q", got)
	}
	if Glyph(true) != "✓" || Glyph(false) != "✗" {
		t.Error("glyphs should be bare outside a terminal")
	}
}

func TestRenderMarkdown_PassthroughWhenNotTTY(t *testing.T) {
	withTTY(t, false)

	md := "# Title\n\nbody"
	if got := RenderMarkdown(md); got != md {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestStyled_TTYKeepsText(t *testing.T) {
	withTTY(t, true)

	if !strings.Contains(Title("Configuration"), "Configuration") {
		t.Error("styled output must contain the original text")
	}
}
