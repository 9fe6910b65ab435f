// Package toolchain wraps the external commands the generator depends on:
// the npm package manager and the git version control tool. All process
// execution goes through the Runner interface so tests can substitute a
// recording fake instead of spawning real processes.
package toolchain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command in a working directory.
type Runner interface {
	// Run executes name with args in dir and blocks until the command
	// exits. A non-zero exit status is returned as a *CommandError.
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// CommandError describes an external command that exited non-zero.
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	cmd := e.Name
	if len(e.Args) > 0 {
		cmd = e.Name + " " + strings.Join(e.Args, " ")
	}
	return fmt.Sprintf("command %q exited with status %d", cmd, e.ExitCode)
}

// Unwrap returns the underlying exec error.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// execRunner runs commands with the invoking terminal's stdio attached,
// so interactive output from npm and git lands on the user's terminal.
type execRunner struct {
	logger *slog.Logger
}

// NewRunner creates a Runner that spawns real processes.
func NewRunner(logger *slog.Logger) Runner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &execRunner{logger: logger}
}

// Run executes the command with inherited stdio.
func (r *execRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	r.logger.Debug("running command", "name", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		r.logger.Debug("command failed", "name", name, "exitCode", exitCode, "error", err)
		return &CommandError{
			Name:     name,
			Args:     args,
			ExitCode: exitCode,
			Err:      err,
		}
	}

	return nil
}

// Available reports whether the named command can be found in PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
