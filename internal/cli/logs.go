package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/logtail"
)

var (
	logsLines int
	logsLevel string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Print recent activity log entries",
	Args:  cobra.NoArgs,
	RunE:  runLogs,
}

func init() {
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "number of lines to read from the end of the log (0 for all)")
	logsCmd.Flags().StringVar(&logsLevel, "level", "", "only show entries at or above this level")
	rootCmd.AddCommand(logsCmd)
}

func runLogs(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	w := cmd.OutOrStdout()
	lines, err := logtail.Read(cfg.LogFile, logsLines)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintf(w, "No log entries in %s\n", cfg.LogFile)
		return nil
	}

	minLevel := strings.TrimSpace(logsLevel)
	for _, line := range lines {
		evt, ok := logtail.ParseLine(line)
		if !ok {
			if minLevel == "" {
				fmt.Fprintln(w, line)
			}
			continue
		}
		if minLevel != "" && !logtail.AtLeast(evt, logging.ParseLevel(minLevel)) {
			continue
		}
		fmt.Fprintln(w, logtail.Format(evt))
	}
	return nil
}
