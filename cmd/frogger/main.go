// frogger is a turn-based Frogger crossing game for the terminal.
//
// Usage:
//
//	frogger list             - List level files
//	frogger play [level]     - Play a level (pick one when omitted)
//	frogger check [file...]  - Validate level files
//	frogger history [level]  - Show finished sessions
//	frogger config           - Show the active configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.frogger, ./configs)
//	--dir <path>        - Level directory (default: from config, "levels")
//	--db <path>         - History database (default: ~/.frogger/history.db)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import formats to register them
	_ "github.com/vovakirdan/tui-frogger/internal/games/frogger/levels/formats"
)

var (
	// Global flags
	flagConfig   string
	flagLevelDir string
	flagDBPath   string
	flagLogLevel string
)

// exitCode ends the process with a status and no extra message.
type exitCode int

func (e exitCode) Error() string {
	return fmt.Sprintf("exit status %d", int(e))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			os.Exit(int(code))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - guide the frog across the road, one move at a time",
	Long: `Frogger is a turn-based crossing game. Every move you make advances the
traffic; reach the bottom row without touching an obstacle to win.

Available commands:
  list     - Show level files in the level directory
  play     - Play a level
  check    - Validate level files
  history  - View finished sessions
  config   - Show the active configuration

Examples:
  frogger list
  frogger play
  frogger play crossing
  frogger play ./levels/highway.frog --tui
  frogger check levels/*.frog
  frogger history --limit 20`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "dir", "", "Level directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
}
