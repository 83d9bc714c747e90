package invoker

import (
	"fmt"
	"strings"
	"time"

	"github.com/codelens/code-analyzer/internal/tools"
)

// stderrTailLines bounds the diagnostic text carried in a ToolFailure.
const stderrTailLines = 20

// ToolFailure is surfaced when the external tool keeps failing after the
// retry budget is spent. It carries enough detail to diagnose: exit code,
// stderr tail, attempt count, and elapsed time.
type ToolFailure struct {
	Tool     tools.ID
	ExitCode int
	Stderr   string
	Attempts int
	TimedOut bool
	Elapsed  time.Duration
}

func (e *ToolFailure) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("external tool %s timed out after %d attempt(s) (%s elapsed)",
			e.Tool, e.Attempts, e.Elapsed.Round(time.Second))
	}
	msg := fmt.Sprintf("external tool %s failed with exit code %d after %d attempt(s)",
		e.Tool, e.ExitCode, e.Attempts)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

// stderrTail keeps the last few lines of captured stderr.
func stderrTail(stderr string) string {
	stderr = strings.TrimSpace(stderr)
	if stderr == "" {
		return ""
	}
	lines := strings.Split(stderr, "\n")
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return strings.Join(lines, "\n")
}
