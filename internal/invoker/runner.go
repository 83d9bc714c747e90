package invoker

import (
	"bytes"
	"context"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// CommandRunner abstracts child-process execution so the invoker can be
// exercised in tests without spawning anything.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) RunResult
}

// RunResult is the raw outcome of one child-process execution.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	TimedOut bool
	Err      error // start failures and other non-exit errors
}

// ExecRunner launches real processes.
type ExecRunner struct{}

var _ CommandRunner = ExecRunner{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) RunResult {
	log.Debugf("running command: %s %v", name, args)

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := RunResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			res.TimedOut = true
			res.ExitCode = -1
			return res
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.ExitCode = exitErr.ExitCode()
			return res
		}
		res.ExitCode = -1
		res.Err = err
	}
	return res
}

// FakeRunner records calls and replays scripted results, one per attempt.
// The final result repeats once the script is exhausted.
type FakeRunner struct {
	Results []RunResult
	Calls   []FakeCall
}

// FakeCall records one Run invocation.
type FakeCall struct {
	Name string
	Args []string
}

var _ CommandRunner = (*FakeRunner)(nil)

func (f *FakeRunner) Run(_ context.Context, name string, args ...string) RunResult {
	f.Calls = append(f.Calls, FakeCall{Name: name, Args: args})
	if len(f.Results) == 0 {
		return RunResult{}
	}
	idx := len(f.Calls) - 1
	if idx >= len(f.Results) {
		idx = len(f.Results) - 1
	}
	return f.Results[idx]
}
