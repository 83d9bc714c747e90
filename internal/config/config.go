// Package config persists the analysis tool selection.
//
// The selection lives in ~/.claude/code_analyzer_config.json under the
// "preferred_tool" key. It is read once per invocation and mutated only by
// the explicit config command, so no locking is needed.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/codelens/code-analyzer/internal/tools"
)

const (
	fileName         = "code_analyzer_config.json"
	keyPreferredTool = "preferred_tool"
)

// Path returns the configuration file location (~/.claude/code_analyzer_config.json).
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".claude", fileName), nil
}

// PreferredTool reads the persisted tool selection. A missing, unreadable,
// or out-of-range value falls back to the default tool.
func PreferredTool() tools.ID {
	path, err := Path()
	if err != nil {
		return tools.Default
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return tools.Default
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return tools.Default
	}

	var name string
	if err := json.Unmarshal(raw[keyPreferredTool], &name); err != nil {
		return tools.Default
	}
	if _, err := tools.Lookup(tools.ID(name)); err != nil {
		return tools.Default
	}
	return tools.ID(name)
}

// SetPreferredTool validates and persists a tool selection. The write is
// read-merge-write so unrelated keys in the file survive.
func SetPreferredTool(id tools.ID) error {
	if _, err := tools.Lookup(id); err != nil {
		return err
	}

	path, err := Path()
	if err != nil {
		return err
	}

	settings := make(map[string]interface{})
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading configuration: %w", err)
		}
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return fmt.Errorf("creating configuration directory: %w", mkErr)
		}
	} else {
		if err := json.Unmarshal(data, &settings); err != nil {
			// Corrupt file: start fresh rather than fail.
			settings = make(map[string]interface{})
		}
	}

	settings[keyPreferredTool] = string(id)

	output, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}
	output = append(output, '\n')

	if err := os.WriteFile(path, output, 0644); err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}

// Status summarizes the current configuration.
type Status struct {
	Preferred tools.ID
	Tools     []tools.Availability
	// Effective is the preferred tool when its binary is installed, and
	// empty otherwise.
	Effective tools.ID
}

// CurrentStatus reads the selection and probes PATH for every known tool.
func CurrentStatus() Status {
	st := Status{
		Preferred: PreferredTool(),
		Tools:     tools.Detect(),
	}
	for _, a := range st.Tools {
		if a.ID == st.Preferred && a.Available {
			st.Effective = a.ID
		}
	}
	return st
}
