package project

import (
	"fmt"
	"io"
)

// Reporter receives progress notifications during generation.
type Reporter interface {
	// Step announces a pipeline step about to run.
	Step(name string)
	// Warn reports a non-fatal problem.
	Warn(msg string)
}

// consoleReporter prints progress lines to a writer.
type consoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a Reporter that writes plain progress lines.
func NewConsoleReporter(out io.Writer) Reporter {
	return &consoleReporter{out: out}
}

func (r *consoleReporter) Step(name string) {
	_, _ = fmt.Fprintf(r.out, "  ○ %s\n", name)
}

func (r *consoleReporter) Warn(msg string) {
	_, _ = fmt.Fprintf(r.out, "  ! %s\n", msg)
}

// nopReporter discards all notifications.
type nopReporter struct{}

func (nopReporter) Step(string) {}
func (nopReporter) Warn(string) {}
