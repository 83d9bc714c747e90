// Package tools holds the capability table for the external analysis CLIs
// this wrapper can drive. Each entry knows its binary candidates on PATH and
// how to shape an argument list, so adding a third tool means adding one
// table entry.
package tools

import (
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// ID identifies an external analysis tool.
type ID string

const (
	// Gemini is the Google Gemini CLI. Older installs named the binary
	// "geminicli", newer ones "gemini"; both are probed.
	Gemini ID = "gemini"
	// Qwen is the Alibaba Qwen Code CLI, the default tool.
	Qwen ID = "qwen"
)

// Default is used when no tool has been configured.
const Default = Qwen

// Tool describes one external analysis CLI.
type Tool struct {
	ID       ID
	Binaries []string // PATH candidates, first match wins
	// BuildArgs shapes the argument list for a rendered prompt. The two
	// supported tools accept the same shape today, but each keeps its own
	// builder so they can diverge independently.
	BuildArgs func(prompt string) []string
}

var registry = map[ID]Tool{
	Gemini: {
		ID:       Gemini,
		Binaries: []string{"geminicli", "gemini"},
		BuildArgs: func(prompt string) []string {
			return []string{"--all-files", "--yolo", "-p", prompt}
		},
	},
	Qwen: {
		ID:       Qwen,
		Binaries: []string{"qwen"},
		BuildArgs: func(prompt string) []string {
			return []string{"--all-files", "--yolo", "-p", prompt}
		},
	},
}

// ConfigurationError reports a tool identifier outside the known set. It is
// returned before any process is spawned and is never retried.
type ConfigurationError struct {
	Tool string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown analysis tool %q (supported: %s)", e.Tool, idList())
}

// Lookup resolves a tool id against the registry.
func Lookup(id ID) (Tool, error) {
	t, ok := registry[id]
	if !ok {
		return Tool{}, &ConfigurationError{Tool: string(id)}
	}
	return t, nil
}

// IDs returns all known tool identifiers, sorted.
func IDs() []ID {
	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Command returns the binary to execute: the first PATH candidate that
// resolves, or the primary candidate when none does (the spawn will then
// fail with a diagnosable error).
func (t Tool) Command() string {
	for _, bin := range t.Binaries {
		if path, err := exec.LookPath(bin); err == nil {
			return path
		}
	}
	return t.Binaries[0]
}

// Availability reports whether a tool's binary is installed.
type Availability struct {
	ID        ID
	Available bool
	Command   string // resolved path, or "" when not found
}

// Detect probes PATH for every known tool.
func Detect() []Availability {
	var out []Availability
	for _, id := range IDs() {
		t := registry[id]
		a := Availability{ID: id}
		for _, bin := range t.Binaries {
			if path, err := exec.LookPath(bin); err == nil {
				a.Available = true
				a.Command = path
				break
			}
		}
		out = append(out, a)
	}
	return out
}

func idList() string {
	parts := make([]string, 0, len(registry))
	for _, id := range IDs() {
		parts = append(parts, string(id))
	}
	return strings.Join(parts, ", ")
}
