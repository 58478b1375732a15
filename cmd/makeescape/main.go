// makeescape is a three-room escape puzzle.
//
// Usage:
//
//	makeescape play              - Open the game window
//	makeescape replay <script>   - Run a YAML input script headlessly
//	makeescape sprites           - List the resolved sprite catalog
//
// Global flags:
//
//	--config <path>     - YAML config overriding the built-in defaults
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"chosenoffset.com/makeescape/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	cfg    *config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "makeescape",
	Short: "Make Escape - craft your way out of three rooms",
	Long: `Make Escape is a small puzzle game. Gather materials, craft tools at
the workbench, set four offerings on the pedestals and take the key to
the gate.

Examples:
  makeescape play
  makeescape replay walkthrough.yaml
  makeescape sprites`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(spritesCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		c.Log.Level = flagLogLevel
	}
	cfg = c

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "makeescape",
		Level:           level,
	})
	return nil
}
