package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/app"
)

// version is set at build time with -ldflags "-X".
var version = "dev"

var (
	configPath string
	envFile    string
	apiURL     string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "roster",
	Short: "Browse the character catalog from the terminal",
	Long: `roster is a terminal browser for a remote character catalog.

Run without a command to start the interactive UI: type to search,
page through results and open a character to see its homeworld,
species and films. The list, show and logs commands print the same
data without the UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return app.Run(cmd.Context(), appOptions())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/roster/config.toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file with ROSTER_* overrides (default ./.env)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "character service base URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func appOptions() app.Options {
	return app.Options{
		ConfigPath: configPath,
		EnvFile:    envFile,
		APIURL:     apiURL,
		LogLevel:   logLevel,
	}
}
