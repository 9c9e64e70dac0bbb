package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bot2048/internal/board"
	"github.com/vovakirdan/bot2048/internal/play"
	"github.com/vovakirdan/bot2048/internal/render"
	"github.com/vovakirdan/bot2048/internal/rng"
	"github.com/vovakirdan/bot2048/internal/search"
	"github.com/vovakirdan/bot2048/internal/storage"
)

var (
	flagMaxMoves  int
	flagLookahead int
	flagWorkers   int
	flagQuiet     bool
	flagNoSave    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Let the bot play a full game",
	Long: `Start a new game from two random tiles and let the bot play it
until it reaches 2048, runs out of moves or hits the move limit.

The board is printed after every move unless --quiet is given.
Finished runs are recorded in the runs database.

Examples:
  bot2048 play
  bot2048 play --seed 42
  bot2048 play --lookahead 2 --workers 4 --quiet
  bot2048 play --max-moves 200 --no-save`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagMaxMoves, "max-moves", 0, "Stop after this many moves (default from config)")
	playCmd.Flags().IntVar(&flagLookahead, "lookahead", 0, "Search depth in plies (default from config)")
	playCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Root directions searched concurrently (default from config)")
	playCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Only print the final board")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	exitOnError("loading config", err)

	if flagMaxMoves > 0 {
		cfg.Play.MaxMoves = flagMaxMoves
	}
	if flagLookahead > 0 {
		cfg.Search.Lookahead = flagLookahead
	}
	if flagWorkers > 0 {
		cfg.Search.Workers = flagWorkers
	}

	logger := newLogger(cfg.Log.Level)
	color := useColor()

	src := rng.New(cfg.Play.Seed, cfg.Spawn.Weight)
	bot := search.New(
		search.WithLookahead(cfg.Search.Lookahead),
		search.WithWorkers(cfg.Search.Workers),
		search.WithLogger(logger),
	)

	runner := play.NewRunner(bot, src)
	runner.MaxMoves = cfg.Play.MaxMoves
	runner.Logger = logger
	if !flagQuiet {
		runner.OnStep = func(s play.Step) {
			fmt.Printf("Move %d: %s\n", s.Index, s.Move)
			fmt.Println(render.Grid(s.Board, color))
		}
	}

	start := board.NewSeeded(src)
	if !flagQuiet {
		fmt.Println("Start:")
		fmt.Println(render.Grid(start, color))
	}

	logger.Info("starting game", "seed", cfg.Play.Seed, "lookahead", cfg.Search.Lookahead, "workers", cfg.Search.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := runner.Run(ctx, start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error playing game: %v\n", err)
		os.Exit(1)
	}

	if flagQuiet {
		fmt.Println(render.Grid(res.Board, color))
	}
	switch res.Outcome {
	case play.OutcomeWon:
		fmt.Println("You win!")
	case play.OutcomeLost:
		fmt.Println("You have lost!")
	default:
		fmt.Printf("Stopped after %d moves.\n", res.Moves)
	}
	fmt.Printf("Moves: %d  Max tile: %d  Time: %s\n", res.Moves, res.MaxTile, res.Duration.Round(time.Millisecond))

	if flagNoSave {
		return
	}

	// Recording is best-effort; the game already finished.
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("cannot open runs database", "err", err)
		return
	}
	defer store.Close()

	id, err := store.SaveRun(storage.RunEntry{
		Seed:       cfg.Play.Seed,
		Outcome:    string(res.Outcome),
		Moves:      res.Moves,
		MaxTile:    res.MaxTile,
		Lookahead:  cfg.Search.Lookahead,
		DurationMS: res.Duration.Milliseconds(),
	})
	if err != nil {
		logger.Warn("cannot record run", "err", err)
		return
	}
	logger.Debug("run recorded", "id", id)
}
