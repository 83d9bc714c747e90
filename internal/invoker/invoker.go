// Package invoker translates a validated analysis request into a single
// external-process execution with bounded retry, and surfaces a compact
// result.
//
// One invocation moves through building arguments, running the child
// process, and either succeeding or retrying until the attempt budget is
// spent. Validation and configuration problems are reported before any
// process is spawned and are never retried; non-zero exits and timeouts are
// retried with a short backoff.
package invoker

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/codelens/code-analyzer/internal/analysis"
	"github.com/codelens/code-analyzer/internal/report"
	"github.com/codelens/code-analyzer/internal/tools"
)

// Defaults. Analysis is documented to take on the order of minutes, so the
// timeout is generous.
const (
	DefaultTimeout     = 5 * time.Minute
	DefaultMaxAttempts = 3
	DefaultBackoff     = 2 * time.Second
)

// Options tune one invocation.
type Options struct {
	Timeout     time.Duration // per-attempt deadline
	MaxAttempts int           // total attempts, including the first
	Backoff     time.Duration // pause between attempts
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Backoff <= 0 {
		o.Backoff = DefaultBackoff
	}
	return o
}

// Result is the outcome of a successful invocation.
type Result struct {
	Summary    string
	ReportPath string // empty when the tool printed no report marker
	Stdout     string
	Stderr     string
	Command    string // rendered command line, for transcripts and logs
	Attempts   int
	Elapsed    time.Duration
}

// Invoker runs analyses through a CommandRunner.
type Invoker struct {
	runner CommandRunner
	opts   Options
}

// New creates an invoker. A nil runner means real process execution.
func New(runner CommandRunner, opts Options) *Invoker {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Invoker{runner: runner, opts: opts.withDefaults()}
}

// Run executes one analysis with the configured tool. It validates the
// request and resolves the tool before spawning anything, then retries
// non-zero exits and timeouts up to the attempt budget. Cancellation of ctx
// terminates the child and fails the invocation without further retries.
func (iv *Invoker) Run(ctx context.Context, req analysis.Request, toolID tools.ID) (Result, error) {
	start := time.Now()

	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	tool, err := tools.Lookup(toolID)
	if err != nil {
		return Result{}, err
	}

	prompt := analysis.Prompt(req)
	args := tool.BuildArgs(prompt)
	bin := tool.Command()
	cmdline := renderCommand(bin, args)

	var last RunResult
	attempts := 0
	for attempt := 1; attempt <= iv.opts.MaxAttempts; attempt++ {
		attempts = attempt

		attemptCtx, cancel := context.WithTimeout(ctx, iv.opts.Timeout)
		res := iv.runner.Run(attemptCtx, bin, args...)
		cancel()

		if res.Err == nil && !res.TimedOut && res.ExitCode == 0 {
			summary, reportPath := parseOutput(res.Stdout)
			if summary == "" {
				summary = report.ExtractSummary(res.Stdout)
			}
			return Result{
				Summary:    summary,
				ReportPath: reportPath,
				Stdout:     res.Stdout,
				Stderr:     res.Stderr,
				Command:    cmdline,
				Attempts:   attempt,
				Elapsed:    time.Since(start),
			}, nil
		}

		last = res
		log.Debugf("analysis attempt %d/%d failed: exit=%d timedOut=%v err=%v",
			attempt, iv.opts.MaxAttempts, res.ExitCode, res.TimedOut, res.Err)

		// Caller cancellation: fail now, no salvage.
		if ctx.Err() != nil {
			break
		}
		if attempt < iv.opts.MaxAttempts {
			if !sleep(ctx, iv.opts.Backoff) {
				break
			}
		}
	}

	diag := stderrTail(last.Stderr)
	if diag == "" && last.Err != nil {
		diag = last.Err.Error()
	}
	return Result{}, &ToolFailure{
		Tool:     toolID,
		ExitCode: last.ExitCode,
		Stderr:   diag,
		Attempts: attempts,
		TimedOut: last.TimedOut,
		Elapsed:  time.Since(start),
	}
}

// CommandLine renders the exact command an invocation would execute, without
// running anything. Used by the generate command.
func CommandLine(req analysis.Request, toolID tools.ID) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	tool, err := tools.Lookup(toolID)
	if err != nil {
		return "", err
	}
	return renderCommand(tool.Command(), tool.BuildArgs(analysis.Prompt(req))), nil
}

func renderCommand(bin string, args []string) string {
	parts := []string{bin}
	for _, a := range args {
		if strings.ContainsAny(a, " \t\"") {
			a = `"` + strings.ReplaceAll(a, `"`, `\"`) + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// sleep pauses for d or until ctx is done; it reports whether the full
// backoff elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
