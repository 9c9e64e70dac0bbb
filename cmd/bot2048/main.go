// bot2048 plays 2048 with an expectimax bot in the terminal.
//
// Usage:
//
//	bot2048 play                - Let the bot play a full game
//	bot2048 best <16 values>    - Print the bot's move for a board
//	bot2048 move <dir> <values> - Apply one move to a board
//	bot2048 runs                - Show recorded runs
//
// Global flags:
//
//	--config <path>     - Set config file (default search: ~/.bot2048, ./configs, built-in)
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.bot2048/runs.db)
//	--log-level <level> - Set log level: debug, info, warn, error
//	--no-color          - Disable colored boards
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bot2048/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagNoColor  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bot2048",
	Short: "bot2048 - An expectimax bot for 2048",
	Long: `bot2048 plays the sliding-tile game 2048 with a depth-limited
expectimax search.

Available commands:
  play   - Let the bot play a full game
  best   - Print the bot's move for a given board
  move   - Apply a single move to a given board
  runs   - View recorded runs

Examples:
  bot2048 play
  bot2048 play --seed 42 --quiet
  bot2048 best 2 2 4 0 0 0 0 0 0 0 0 0 0 0 0 0
  bot2048 move left 2 2 4 0 0 0 0 0 0 0 0 0 0 0 0 0
  bot2048 runs --top 5`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bot config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to runs database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored board output")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(runsCmd)
}

// loadConfig reads the config file and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("seed") {
		cfg.Play.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the stderr logger for the configured level.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bot2048",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
	return logger
}

// useColor reports whether boards should be styled.
func useColor() bool {
	return !flagNoColor && term.IsTerminal(int(os.Stdout.Fd()))
}

// exitOnError prints err and exits when it is not nil.
func exitOnError(what string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
		os.Exit(1)
	}
}
