package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/expresso-dev/expresso/assets"
	"github.com/expresso-dev/expresso/internal/cli/wizard"
	"github.com/expresso-dev/expresso/internal/config"
	"github.com/expresso-dev/expresso/internal/core/project"
	"github.com/expresso-dev/expresso/internal/template"
	"github.com/expresso-dev/expresso/internal/toolchain"
	"github.com/expresso-dev/expresso/pkg/version"
)

var newCmd = &cobra.Command{
	Use:   "new [project-name]",
	Short: "Generate a new Express project",
	Long: `Generate a new Express-based Node.js project.

Usage patterns:
  expresso new my-app        Ask the remaining questions, then generate ./my-app/
  expresso new               Fully interactive; the wizard asks for the name too
  expresso new my-app --non-interactive --language typescript --docker
                             No prompts; unset options keep their defaults

Examples:
  expresso new api --language typescript --mongo --git
  expresso new api --preset team-defaults.yaml
  expresso new api --non-interactive --deps "cors, dotenv" --env --env-vars "PORT, MONGO_URI"`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateNewFlags,
	RunE:    runNew,
}

func init() {
	rootCmd.AddCommand(newCmd)

	newCmd.Flags().String("root", "", "Parent directory for the new project (default: current directory)")
	newCmd.Flags().String("name", "", "Project name (default: positional argument)")
	newCmd.Flags().String("language", "", "Project language: javascript or typescript (default: javascript)")
	newCmd.Flags().Bool("mongo", false, "Add MongoDB support (mongoose)")
	newCmd.Flags().Bool("docker", false, "Write a Dockerfile")
	newCmd.Flags().Bool("lint", false, "Install and configure ESLint + Prettier")
	newCmd.Flags().Bool("git", false, "Initialize a git repository with an initial commit")
	newCmd.Flags().Bool("env", false, "Write a .env file")
	newCmd.Flags().String("deps", "", "Comma-separated extra npm dependencies")
	newCmd.Flags().String("env-vars", "", "Comma-separated environment variable names for .env")
	newCmd.Flags().String("preset", "", "Load answers from a YAML preset file (skips the wizard)")
	newCmd.Flags().Bool("skip-install", false, "Skip npm invocations; write a package.json stub instead")
	newCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults")
	newCmd.Flags().Bool("verbose", false, "Enable debug logging to stderr")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateNewFlags validates flag values before execution.
func validateNewFlags(cmd *cobra.Command, _ []string) error {
	if lang := getStringFlag(cmd, "language"); lang != "" {
		if _, err := project.ParseLanguage(lang); err != nil {
			return fmt.Errorf("invalid --language value %q: must be javascript or typescript", lang)
		}
	}
	return nil
}

// runNew executes the project generation workflow.
func runNew(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if getBoolFlag(cmd, "verbose") {
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	rootDir := getStringFlag(cmd, "root")
	if rootDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		rootDir = cwd
	}

	req := project.GenerationRequest{Language: project.LangJavaScript}

	// Preset answers form the base; explicit flags override below.
	presetPath := getStringFlag(cmd, "preset")
	if presetPath != "" {
		preset, err := config.LoadPreset(presetPath)
		if err != nil {
			return err
		}
		presetReq, err := preset.ToRequest()
		if err != nil {
			return fmt.Errorf("preset %s: %w", presetPath, err)
		}
		req = presetReq
	}

	// Positional argument and --name flag.
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		req.ProjectName = strings.TrimSpace(args[0])
	}
	if name := strings.TrimSpace(getStringFlag(cmd, "name")); name != "" {
		req.ProjectName = name
	}

	applyRequestFlags(cmd, &req)

	nonInteractive := getBoolFlag(cmd, "non-interactive")
	interactive := !nonInteractive && presetPath == "" && isatty.IsTerminal(os.Stdin.Fd())

	if interactive {
		PrintBanner(out, version.GetVersion())
		PrintWelcomeMessage(out)

		answers, err := wizard.RunWithDefaults(req.ProjectName)
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(out, "Generation cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}
		if err := applyWizardAnswers(cmd, &req, answers); err != nil {
			return err
		}
	}

	if err := req.Validate(); err != nil {
		return err
	}

	skipInstall := getBoolFlag(cmd, "skip-install")

	// External tools must be present before the pipeline starts; any
	// failure mid-run leaves a half-built directory behind.
	if !skipInstall && !toolchain.Available("npm") {
		return fmt.Errorf("npm is required but was not found in PATH (use --skip-install to scaffold without it)")
	}
	if req.InitGit && !toolchain.Available("git") {
		return fmt.Errorf("git is required for --git but was not found in PATH")
	}

	gen, err := buildGenerator(logger)
	if err != nil {
		return err
	}
	gen.SetSkipInstall(skipInstall)
	gen.SetReporter(project.NewConsoleReporter(out))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, _ = fmt.Fprintf(out, "Generating %s...\n", req.ProjectName)

	result, err := gen.Generate(ctx, rootDir, req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"Project", result.ProjectDir},
			{"Language", string(req.Language)},
			{"Directories", fmt.Sprintf("%d created", len(result.CreatedDirs))},
			{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
			{"Dependencies", strings.Join(result.RuntimeDeps, ", ")},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Express project generated", details...))

	if result.NextSteps != "" {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, result.NextSteps)
	}

	return nil
}

// applyRequestFlags overlays explicitly set flags onto the request.
// Only flags the user changed are applied so preset values survive.
func applyRequestFlags(cmd *cobra.Command, req *project.GenerationRequest) {
	if cmd.Flags().Changed("language") {
		if lang, err := project.ParseLanguage(getStringFlag(cmd, "language")); err == nil {
			req.Language = lang
		}
	}
	if cmd.Flags().Changed("mongo") {
		req.UseMongo = getBoolFlag(cmd, "mongo")
	}
	if cmd.Flags().Changed("docker") {
		req.UseDocker = getBoolFlag(cmd, "docker")
	}
	if cmd.Flags().Changed("lint") {
		req.UseLint = getBoolFlag(cmd, "lint")
	}
	if cmd.Flags().Changed("git") {
		req.InitGit = getBoolFlag(cmd, "git")
	}
	if cmd.Flags().Changed("env") {
		req.AddEnv = getBoolFlag(cmd, "env")
	}
	if cmd.Flags().Changed("deps") {
		req.ExtraDependencies = project.SplitList(getStringFlag(cmd, "deps"))
	}
	if cmd.Flags().Changed("env-vars") {
		req.EnvVarNames = project.SplitList(getStringFlag(cmd, "env-vars"))
	}
}

// applyWizardAnswers overlays wizard answers onto the request. Flags the
// user set explicitly keep their values.
func applyWizardAnswers(cmd *cobra.Command, req *project.GenerationRequest, answers *wizard.Answers) error {
	if answers.ProjectName != "" {
		req.ProjectName = answers.ProjectName
	}
	if !cmd.Flags().Changed("language") && answers.Language != "" {
		lang, err := project.ParseLanguage(answers.Language)
		if err != nil {
			return err
		}
		req.Language = lang
	}
	if !cmd.Flags().Changed("mongo") {
		req.UseMongo = answers.UseMongo
	}
	if !cmd.Flags().Changed("docker") {
		req.UseDocker = answers.UseDocker
	}
	if !cmd.Flags().Changed("lint") {
		req.UseLint = answers.UseLint
	}
	if !cmd.Flags().Changed("git") {
		req.InitGit = answers.InitGit
	}
	if !cmd.Flags().Changed("env") {
		req.AddEnv = answers.AddEnv
	}
	if !cmd.Flags().Changed("deps") {
		req.ExtraDependencies = project.SplitList(answers.ExtraDeps)
	}
	if !cmd.Flags().Changed("env-vars") {
		req.EnvVarNames = project.SplitList(answers.EnvVars)
	}
	return nil
}

// buildGenerator wires the generator with real collaborators.
func buildGenerator(logger *slog.Logger) (*project.Generator, error) {
	tmplFS, err := assets.TemplateFS()
	if err != nil {
		return nil, fmt.Errorf("load embedded templates: %w", err)
	}

	runner := toolchain.NewRunner(logger)
	npm := toolchain.NewNPM(runner, logger)
	git := toolchain.NewGit(runner, logger)
	builder := template.NewBuilder(template.NewRenderer(tmplFS))

	return project.NewGenerator(npm, git, builder, logger), nil
}
