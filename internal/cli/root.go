// Package cli defines the arenactl commands.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"designarena/internal/infra"
)

var (
	verbose bool

	appVersion   = "dev"
	appCommit    = "none"
	appBuildDate = "unknown"

	cfg    *infra.Config
	logger infra.Logger
)

var rootCmd = &cobra.Command{
	Use:   "arenactl",
	Short: "Design Arena offline generator",
	Long: `arenactl turns a creative brief into a design plan, SVG visuals,
a Lottie motion and a zip package without running the API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load(".env", ".env.local")

		loaded, err := infra.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded

		appEnv := cfg.AppEnv
		if !verbose && appEnv == "development" {
			appEnv = "cli"
		}
		logger = infra.NewLoggerTo(cmd.ErrOrStderr(), appEnv)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo records build metadata injected through ldflags.
func SetVersionInfo(version, commit, buildDate string) {
	appVersion = version
	appCommit = commit
	appBuildDate = buildDate
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}
