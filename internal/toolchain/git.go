package toolchain

import (
	"context"
	"io"
	"log/slog"
)

// gitBinary is the version control executable name.
const gitBinary = "git"

// InitialCommitMessage is the message used for the first commit in a
// freshly generated project.
const InitialCommitMessage = "Initial commit"

// Git invokes the system git binary in a project directory.
type Git struct {
	runner Runner
	logger *slog.Logger
}

// NewGit creates a Git client backed by the given runner.
func NewGit(runner Runner, logger *slog.Logger) *Git {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Git{runner: runner, logger: logger}
}

// Init runs "git init" in dir.
func (g *Git) Init(ctx context.Context, dir string) error {
	g.logger.Debug("git init", "dir", dir)
	return g.runner.Run(ctx, dir, gitBinary, "init")
}

// AddAll stages every file in dir.
func (g *Git) AddAll(ctx context.Context, dir string) error {
	g.logger.Debug("git add", "dir", dir)
	return g.runner.Run(ctx, dir, gitBinary, "add", "-A")
}

// Commit records a commit with the given message.
func (g *Git) Commit(ctx context.Context, dir string, message string) error {
	g.logger.Debug("git commit", "dir", dir, "message", message)
	return g.runner.Run(ctx, dir, gitBinary, "commit", "-m", message)
}
