// Package analysis defines the request model for a single code-analysis run:
// the supported scenario categories, request validation, and the prompt
// catalog that turns a (scenario, target) pair into the instruction text sent
// to the external tool.
package analysis

import "fmt"

// Scenario is an analysis category. It selects which prompt family is sent
// to the external tool.
type Scenario string

const (
	ScenarioPatterns      Scenario = "patterns"
	ScenarioArchitecture  Scenario = "architecture"
	ScenarioQuality       Scenario = "quality"
	ScenarioReview        Scenario = "review"
	ScenarioAudit         Scenario = "audit"
	ScenarioFeatures      Scenario = "features"
	ScenarioDocumentation Scenario = "documentation"
)

// Scenarios lists all supported scenarios in display order.
func Scenarios() []Scenario {
	return []Scenario{
		ScenarioPatterns,
		ScenarioArchitecture,
		ScenarioQuality,
		ScenarioReview,
		ScenarioAudit,
		ScenarioFeatures,
		ScenarioDocumentation,
	}
}

// Valid reports whether s is one of the supported scenarios.
func (s Scenario) Valid() bool {
	switch s {
	case ScenarioPatterns, ScenarioArchitecture, ScenarioQuality,
		ScenarioReview, ScenarioAudit, ScenarioFeatures, ScenarioDocumentation:
		return true
	}
	return false
}

// Request describes one analysis run. It is ephemeral: constructed per
// invocation and never persisted.
type Request struct {
	Scenario Scenario
	Target   string // free-text scope descriptor, e.g. "authentication"
	Context  string // optional extra context appended to the prompt
}

// ValidationError reports a request that cannot be executed. It is returned
// before any process is spawned and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the request against the supported scenario set and the
// non-empty target requirement.
func (r Request) Validate() error {
	if !r.Scenario.Valid() {
		return &ValidationError{
			Field:  "scenario",
			Reason: fmt.Sprintf("%q is not a supported scenario", string(r.Scenario)),
		}
	}
	if r.Target == "" {
		return &ValidationError{Field: "target", Reason: "must not be empty"}
	}
	return nil
}
