package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bot2048/internal/render"
	"github.com/vovakirdan/bot2048/internal/search"
)

var bestCmd = &cobra.Command{
	Use:   "best <16 values>",
	Short: "Print the bot's move for a board",
	Long: `Run the expectimax search on the given board and print the chosen
direction together with its numeric code (up -2, left -1, right 1, down 2).

Tiles are given in row-major order, 0 for an empty cell. They may be
separate arguments or one comma-separated argument.

Examples:
  bot2048 best 2 2 4 0 0 0 0 0 0 0 0 0 0 0 0 0
  bot2048 best 8,128,32,8,16,256,16,2,2,4,0,0,0,0,0,0`,
	Args: cobra.RangeArgs(1, 16),
	Run:  runBest,
}

func init() {
	bestCmd.Flags().IntVar(&flagLookahead, "lookahead", 0, "Search depth in plies (default from config)")
	bestCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Root directions searched concurrently (default from config)")
}

func runBest(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	exitOnError("loading config", err)

	if flagLookahead > 0 {
		cfg.Search.Lookahead = flagLookahead
	}
	if flagWorkers > 0 {
		cfg.Search.Workers = flagWorkers
	}

	b, err := parseBoardArgs(args)
	exitOnError("parsing board", err)

	bot := search.New(
		search.WithLookahead(cfg.Search.Lookahead),
		search.WithWorkers(cfg.Search.Workers),
		search.WithLogger(newLogger(cfg.Log.Level)),
	)
	bot.SetBoard(b)

	fmt.Println(render.Grid(b, useColor()))

	move, err := bot.BestMoveContext(context.Background())
	if errors.Is(err, search.ErrNoMove) {
		fmt.Println("No move available.")
		os.Exit(2)
	}
	exitOnError("searching", err)

	fmt.Printf("Best move: %s (%d)\n", move, move.Code())
}
