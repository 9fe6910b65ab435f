package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/expresso-dev/expresso/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "expresso",
	Short: "expresso: interactive Express project generator",
	Long: `expresso scaffolds a minimal Express-based Node.js project.

It asks a short series of questions (language, MongoDB, Docker, linting,
git, environment variables, extra dependencies), writes the project files,
installs dependencies via npm, and optionally makes an initial git commit.`,
	Version: version.GetVersion(),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("expresso %s\n", version.GetVersion()))
}
