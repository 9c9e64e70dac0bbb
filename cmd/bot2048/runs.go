package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bot2048/internal/storage"
)

var (
	flagTop    int
	flagRecent bool
	flagClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display the best recorded runs, ranked by highest tile and then by
moves survived, followed by overall statistics.

Examples:
  bot2048 runs
  bot2048 runs --top 20
  bot2048 runs --recent
  bot2048 runs --clear`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to show")
	runsCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent runs instead of the best")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runRuns(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	exitOnError("loading config", err)

	// Open run storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	var runs []storage.RunEntry
	title := "Best Runs"
	if flagRecent {
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagTop)
	} else {
		runs, err = store.TopRuns(flagTop)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bot2048 play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %-5s  %-8s  %s\n", "#", "Max", "Outcome", "Moves", "Depth", "Seed", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %-6s  %-5s  %-8s  %s\n", "-", "---", "-------", "-----", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		seed := "random"
		if r.Seed != 0 {
			seed = fmt.Sprint(r.Seed)
		}
		fmt.Printf("  %-4d  %-8d  %-10s  %-6d  %-5d  %-8s  %s\n", i+1, r.MaxTile, r.Outcome, r.Moves, r.Lookahead, seed, dateStr)
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Best tile: %d  Avg moves: %.1f\n", stats.Runs, stats.Wins, stats.BestTile, stats.AvgMoves)
}
