package toolchain

import (
	"context"
	"io"
	"log/slog"
)

// npmBinary is the package manager executable name.
const npmBinary = "npm"

// NPM invokes the npm package manager in a project directory.
type NPM struct {
	runner Runner
	logger *slog.Logger
}

// NewNPM creates an NPM client backed by the given runner.
func NewNPM(runner Runner, logger *slog.Logger) *NPM {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &NPM{runner: runner, logger: logger}
}

// Init runs "npm init -y" in dir, producing a default package.json.
func (n *NPM) Init(ctx context.Context, dir string) error {
	n.logger.Debug("npm init", "dir", dir)
	return n.runner.Run(ctx, dir, npmBinary, "init", "-y")
}

// Install runs "npm install" with the given packages. A nil or empty
// package list is a no-op.
func (n *NPM) Install(ctx context.Context, dir string, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	n.logger.Debug("npm install", "dir", dir, "packages", pkgs)
	args := append([]string{"install"}, pkgs...)
	return n.runner.Run(ctx, dir, npmBinary, args...)
}

// InstallDev runs "npm install --save-dev" with the given packages.
// A nil or empty package list is a no-op.
func (n *NPM) InstallDev(ctx context.Context, dir string, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	n.logger.Debug("npm install --save-dev", "dir", dir, "packages", pkgs)
	args := append([]string{"install", "--save-dev"}, pkgs...)
	return n.runner.Run(ctx, dir, npmBinary, args...)
}
