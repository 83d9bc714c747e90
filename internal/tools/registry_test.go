package tools

import (
	"errors"
	"testing"

	"github.com/codelens/code-analyzer/internal/analysis"
)

func TestBuildArgs_AllScenariosAllTools(t *testing.T) {
	for _, id := range IDs() {
		tool, err := Lookup(id)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", id, err)
		}
		for _, s := range analysis.Scenarios() {
			prompt := analysis.Prompt(analysis.Request{Scenario: s, Target: "sample"})
			args := tool.BuildArgs(prompt)
			if len(args) == 0 {
				t.Errorf("tool %q scenario %q: empty argument list", id, s)
				continue
			}
			for _, a := range args {
				if a == "" {
					t.Errorf("tool %q scenario %q: empty argument in %v", id, s, args)
				}
			}
			if args[len(args)-1] != prompt {
				t.Errorf("tool %q scenario %q: prompt not passed as final argument", id, s)
			}
		}
	}
}

func TestLookup_UnknownTool(t *testing.T) {
	_, err := Lookup("copilot")

	var cerr *ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cerr.Tool != "copilot" {
		t.Errorf("expected tool 'copilot' in error, got %q", cerr.Tool)
	}
}

func TestIDs_Sorted(t *testing.T) {
	ids := IDs()
	if len(ids) != 2 || ids[0] != Gemini || ids[1] != Qwen {
		t.Errorf("unexpected id set: %v", ids)
	}
}

func TestDetect_CoversEveryTool(t *testing.T) {
	seen := make(map[ID]bool)
	for _, a := range Detect() {
		seen[a.ID] = true
		if a.Available && a.Command == "" {
			t.Errorf("tool %q reported available without a resolved command", a.ID)
		}
	}
	for _, id := range IDs() {
		if !seen[id] {
			t.Errorf("Detect missing tool %q", id)
		}
	}
}
