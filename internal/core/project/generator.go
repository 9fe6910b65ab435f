package project

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/expresso-dev/expresso/internal/defs"
	"github.com/expresso-dev/expresso/internal/template"
	"github.com/expresso-dev/expresso/internal/toolchain"
)

// Result summarizes the outcome of a generation run.
type Result struct {
	ProjectDir   string   // Absolute path of the generated project.
	CreatedDirs  []string // Directories created, relative to the project root.
	CreatedFiles []string // Files created, relative to the project root.
	RuntimeDeps  []string // Runtime dependencies requested from npm.
	DevDeps      []string // Dev dependencies requested from npm (incl. lint tooling).
	NextSteps    string   // Human-readable completion instructions.
	Warnings     []string // Non-fatal warnings during generation.
}

// Generator materializes a GenerationRequest into a project directory.
// All external processes go through the injected npm and git clients;
// no step is idempotent and no step rolls back earlier work.
type Generator struct {
	npm         *toolchain.NPM
	git         *toolchain.Git
	artifacts   *template.Builder
	logger      *slog.Logger
	reporter    Reporter
	skipInstall bool
}

// NewGenerator creates a Generator with the given dependencies.
func NewGenerator(npm *toolchain.NPM, git *toolchain.Git, artifacts *template.Builder, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Generator{
		npm:       npm,
		git:       git,
		artifacts: artifacts,
		logger:    logger,
		reporter:  nopReporter{},
	}
}

// SetReporter installs a progress reporter. A nil reporter disables
// progress output.
func (g *Generator) SetReporter(r Reporter) {
	if r == nil {
		r = nopReporter{}
	}
	g.reporter = r
}

// SetSkipInstall disables the package-manager invocations. A minimal
// package.json stub is written instead so the start-script patch still
// applies.
func (g *Generator) SetSkipInstall(skip bool) {
	g.skipInstall = skip
}

// Generate runs the full pipeline under root. It fails fast on the first
// filesystem or command error; files written before the failure remain
// on disk.
func (g *Generator) Generate(ctx context.Context, root string, req GenerationRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	root = filepath.Clean(root)
	projectDir := filepath.Join(root, req.ProjectName)

	g.logger.Info("generating project",
		"dir", projectDir,
		"language", string(req.Language),
		"mongo", req.UseMongo,
		"docker", req.UseDocker,
		"lint", req.UseLint,
		"git", req.InitGit,
	)

	// The target must not exist; checked before anything is written.
	if _, err := os.Stat(projectDir); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrProjectExists, projectDir)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("stat %s: %w", projectDir, err)
	}

	result := &Result{
		ProjectDir:  projectDir,
		RuntimeDeps: RuntimeDeps(req),
		DevDeps:     DevDeps(req),
	}
	tmplCtx := template.Context{
		ProjectName: req.ProjectName,
		Port:        defs.ServerPort,
	}
	typescript := req.Language.IsTypeScript()

	// Step 1: Directory layout
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step("Creating project directories")
	if err := g.createDirs(projectDir, typescript, result); err != nil {
		return nil, err
	}

	// Step 2: Server entry point
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step("Writing server entry point")
	entry, err := g.artifacts.EntryPoint(typescript, tmplCtx)
	if err != nil {
		return nil, fmt.Errorf("render entry point: %w", err)
	}
	if err := g.writeArtifact(projectDir, entry, result); err != nil {
		return nil, err
	}

	// Step 3: .env (written even when the variable list is empty)
	if req.AddEnv {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.reporter.Step("Writing .env")
		if err := g.writeArtifact(projectDir, template.EnvFile(req.EnvVarNames), result); err != nil {
			return nil, err
		}
	}

	// Step 4: Dockerfile
	if req.UseDocker {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.reporter.Step("Writing Dockerfile")
		dockerfile, err := g.artifacts.Dockerfile(tmplCtx)
		if err != nil {
			return nil, fmt.Errorf("render Dockerfile: %w", err)
		}
		if err := g.writeArtifact(projectDir, dockerfile, result); err != nil {
			return nil, err
		}
	}

	// Step 5: .gitignore (always)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step("Writing .gitignore")
	gitignore, err := g.artifacts.Gitignore()
	if err != nil {
		return nil, fmt.Errorf("render .gitignore: %w", err)
	}
	if err := g.writeArtifact(projectDir, gitignore, result); err != nil {
		return nil, err
	}

	// Step 6: Manifest bootstrap + dependency installation
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if g.skipInstall {
		g.reporter.Step("Writing package.json stub (install skipped)")
		if err := WriteManifestStub(projectDir, req.ProjectName); err != nil {
			return nil, err
		}
		result.CreatedFiles = append(result.CreatedFiles, defs.PackageJSON)
	} else {
		g.reporter.Step("Initializing package.json")
		if err := g.npm.Init(ctx, projectDir); err != nil {
			return nil, err
		}
		result.CreatedFiles = append(result.CreatedFiles, defs.PackageJSON)

		g.reporter.Step("Installing dependencies")
		if err := g.npm.Install(ctx, projectDir, result.RuntimeDeps); err != nil {
			return nil, err
		}
		if err := g.npm.InstallDev(ctx, projectDir, result.DevDeps); err != nil {
			return nil, err
		}
	}

	// Step 7: TypeScript configuration
	if typescript {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.reporter.Step("Writing tsconfig.json")
		tsconfig, err := g.artifacts.TSConfig()
		if err != nil {
			return nil, fmt.Errorf("render tsconfig.json: %w", err)
		}
		if err := g.writeArtifact(projectDir, tsconfig, result); err != nil {
			return nil, err
		}
	}

	// Step 8: Lint tooling and configuration
	if req.UseLint {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.reporter.Step("Configuring ESLint and Prettier")
		linting := LintDeps(req)
		result.DevDeps = append(result.DevDeps, linting...)
		if !g.skipInstall {
			if err := g.npm.InstallDev(ctx, projectDir, linting); err != nil {
				return nil, err
			}
		}
		eslintrc, err := g.artifacts.ESLintRC(typescript)
		if err != nil {
			return nil, fmt.Errorf("render .eslintrc.json: %w", err)
		}
		if err := g.writeArtifact(projectDir, eslintrc, result); err != nil {
			return nil, err
		}
		prettierrc, err := g.artifacts.PrettierRC()
		if err != nil {
			return nil, fmt.Errorf("render .prettierrc: %w", err)
		}
		if err := g.writeArtifact(projectDir, prettierrc, result); err != nil {
			return nil, err
		}
	}

	// Step 9: Version control
	if req.InitGit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g.reporter.Step("Initializing git repository")
		if err := g.git.Init(ctx, projectDir); err != nil {
			return nil, err
		}
		if err := g.git.AddAll(ctx, projectDir); err != nil {
			return nil, err
		}
		if err := g.git.Commit(ctx, projectDir, toolchain.InitialCommitMessage); err != nil {
			return nil, err
		}
	}

	// Step 10: Manifest finalization
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g.reporter.Step("Setting start script")
	if err := PatchStartScript(projectDir, req.Language); err != nil {
		return nil, err
	}

	// Step 11: Completion report
	nextSteps, err := g.artifacts.NextSteps(typescript, tmplCtx)
	if err != nil {
		// The project is fully generated at this point; a report
		// rendering failure downgrades to a warning.
		result.Warnings = append(result.Warnings, fmt.Sprintf("completion report: %s", err))
		g.reporter.Warn(fmt.Sprintf("completion report: %s", err))
		g.logger.Warn("completion report rendering failed", "error", err)
	} else {
		result.NextSteps = nextSteps
	}

	g.logger.Info("project generated",
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)

	return result, nil
}

// createDirs creates the project root and its fixed subdirectories.
func (g *Generator) createDirs(projectDir string, typescript bool, result *Result) error {
	if err := os.MkdirAll(projectDir, defs.DirPerm); err != nil {
		return fmt.Errorf("create project directory: %w", err)
	}

	dirs := defs.ProjectDirs
	if typescript {
		dirs = append(append([]string{}, dirs...), defs.SrcDir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(projectDir, dir), defs.DirPerm); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}
	return nil
}

// writeArtifact writes a rendered artifact under the project root and
// records it in the result.
func (g *Generator) writeArtifact(projectDir string, a template.Artifact, result *Result) error {
	path := filepath.Join(projectDir, a.Path)
	if err := os.WriteFile(path, a.Content, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", a.Path, err)
	}
	result.CreatedFiles = append(result.CreatedFiles, a.Path)
	return nil
}
