// Package executor runs external commands and captures their output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result holds everything observed from a single command invocation.
// Stderr is stripped of trailing newlines; Stdout is captured verbatim.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs commands synchronously with full output capture.
type Executor struct {
	sudo    bool
	verbose bool
}

// New creates an Executor. When sudo is true, commands are elevated
// through sudo unless the process already runs as root.
func New(sudo, verbose bool) *Executor {
	return &Executor{
		sudo:    sudo,
		verbose: verbose,
	}
}

// SetSudo enables or disables privilege elevation.
func (e *Executor) SetSudo(sudo bool) {
	e.sudo = sudo
}

// SetVerbose enables or disables verbose mode.
func (e *Executor) SetVerbose(verbose bool) {
	e.verbose = verbose
}

// Capture runs name with args and returns the captured exit code, stdout
// and stderr. A non-zero exit code is not an error here; interpreting it
// is the caller's job. The returned error is reserved for failures to run
// the command at all (missing binary, cancelled context).
func (e *Executor) Capture(ctx context.Context, name string, args ...string) (Result, error) {
	var cmd *exec.Cmd
	switch {
	case !e.sudo || isRoot():
		cmd = exec.CommandContext(ctx, name, args...)
	case hasSudo():
		cmd = exec.CommandContext(ctx, "sudo", append([]string{name}, args...)...)
		// sudo may need to prompt for a password even though output is captured
		cmd.Stdin = os.Stdin
	default:
		return Result{}, ErrNoPrivileges
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if e.verbose {
		fmt.Fprintf(os.Stderr, "executing: %s %s\n", name, strings.Join(args, " "))
	}

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The command never ran: bad binary, cancelled context, etc.
			return Result{}, err
		}
	}
	return Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   strings.TrimRight(stderr.String(), "\n"),
	}, nil
}

// Run executes a command with stdout and stderr attached to the terminal.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if e.verbose {
		fmt.Fprintf(os.Stderr, "executing: %s %s\n", name, strings.Join(args, " "))
	}

	return cmd.Run()
}
