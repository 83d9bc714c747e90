package commands

import (
	"bytes"
	"strings"
	"testing"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Reset flag state shared across tests.
	flagScenario = ""
	flagTarget = ""
	flagContext = ""
	flagTool = ""
	flagForce = false

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	defer rootCmd.SetOut(nil)
	defer rootCmd.SetErr(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerate_PrintsCommandLine(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "analyze", "generate", "--scenario", "patterns", "--target", "authentication")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "--all-files --yolo -p") {
		t.Errorf("expected rendered command line, got %q", out)
	}
	if !strings.Contains(out, "authentication and authorization") {
		t.Errorf("expected curated prompt in command line, got %q", out)
	}
}

func TestGenerate_UnknownScenario(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := execute(t, "analyze", "generate", "--scenario", "nonsense", "--target", "x"); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestGenerate_UnknownToolOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := execute(t, "analyze", "generate", "--scenario", "patterns", "--target", "x", "--tool", "copilot"); err == nil {
		t.Fatal("expected configuration error")
	}
}

func TestConfig_SetToolThenStatus(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "config", "set-tool", "gemini")
	if err != nil {
		t.Fatalf("set-tool: %v", err)
	}
	if !strings.Contains(out, "gemini") {
		t.Errorf("set-tool output should name the tool: %q", out)
	}

	out, err = execute(t, "config", "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "Preferred tool: gemini") {
		t.Errorf("status should report gemini as preferred, got %q", out)
	}
}

func TestConfig_SetToolRejectsUnknown(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := execute(t, "config", "set-tool", "copilot"); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestSkillsList(t *testing.T) {
	out, err := execute(t, "skills", "list")
	if err != nil {
		t.Fatalf("skills list: %v", err)
	}
	if !strings.Contains(out, "code-analyzer") {
		t.Errorf("expected bundled skill in listing, got %q", out)
	}
	if !strings.Contains(out, "/code-analyzer:tool") {
		t.Errorf("expected slash command in listing, got %q", out)
	}
}

func TestSkillsShow_Unknown(t *testing.T) {
	if _, err := execute(t, "skills", "show", "no-such-skill"); err == nil {
		t.Fatal("expected error for unknown skill")
	}
}

func TestMarketplaceValidate_Embedded(t *testing.T) {
	out, err := execute(t, "marketplace", "validate")
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !strings.Contains(out, "valid") {
		t.Errorf("expected validity confirmation, got %q", out)
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "code-analyzer") {
		t.Errorf("unexpected version output: %q", out)
	}
}
