// Package play drives a game: the bot picks a move, the board applies it and
// a random tile is added, until the game is won, lost or the move limit is hit.
package play

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bot2048/internal/board"
	"github.com/vovakirdan/bot2048/internal/search"
)

// DefaultMaxMoves bounds a game when no limit is configured.
const DefaultMaxMoves = 1000

// Outcome describes how a game ended.
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeLost      Outcome = "lost"
	OutcomeMoveLimit Outcome = "move_limit"
)

// Player chooses a move for a board.
type Player interface {
	SetBoard(b board.Board)
	BestMoveContext(ctx context.Context) (board.Direction, error)
}

// Step is reported after every applied move.
type Step struct {
	Index int             // 1-based move number
	Move  board.Direction // direction played
	Board board.Board     // board after the move and the new tile
}

// Result summarises a finished game.
type Result struct {
	Outcome  Outcome
	Moves    int
	MaxTile  int
	Board    board.Board
	Duration time.Duration
}

// Runner plays one game at a time.
type Runner struct {
	Player   Player
	Source   board.RandomSource
	MaxMoves int
	Logger   *log.Logger
	// OnStep, if set, is called after every move.
	OnStep func(Step)
}

// NewRunner creates a runner with the default move limit.
func NewRunner(p Player, src board.RandomSource) *Runner {
	return &Runner{
		Player:   p,
		Source:   src,
		MaxMoves: DefaultMaxMoves,
		Logger:   log.New(io.Discard),
	}
}

// Run plays from start until the game ends or ctx is cancelled.
func (r *Runner) Run(ctx context.Context, start board.Board) (Result, error) {
	if r.Player == nil || r.Source == nil {
		return Result{}, errors.New("play: runner needs a player and a random source")
	}
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	maxMoves := r.MaxMoves
	if maxMoves <= 0 {
		maxMoves = DefaultMaxMoves
	}

	began := time.Now()
	b := start
	res := Result{Outcome: OutcomeMoveLimit}

	for res.Moves < maxMoves {
		if b.IsWon() {
			res.Outcome = OutcomeWon
			break
		}
		if !b.IsChangeable() {
			res.Outcome = OutcomeLost
			break
		}

		r.Player.SetBoard(b)
		move, err := r.Player.BestMoveContext(ctx)
		if errors.Is(err, search.ErrNoMove) {
			res.Outcome = OutcomeLost
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("play: move %d: %w", res.Moves+1, err)
		}

		if !b.Move(move) {
			return Result{}, fmt.Errorf("play: move %d: %s does not change the board", res.Moves+1, move)
		}
		b.AddRandomTile(r.Source)
		res.Moves++

		logger.Debug("move played", "n", res.Moves, "move", move, "max", b.MaxTile(), "empty", b.ZeroCount())
		if r.OnStep != nil {
			r.OnStep(Step{Index: res.Moves, Move: move, Board: b})
		}
	}

	// The last move may have won or locked the board.
	if res.Outcome == OutcomeMoveLimit {
		switch {
		case b.IsWon():
			res.Outcome = OutcomeWon
		case !b.IsChangeable():
			res.Outcome = OutcomeLost
		}
	}

	res.Board = b
	res.MaxTile = b.MaxTile()
	res.Duration = time.Since(began)
	logger.Info("game finished", "outcome", res.Outcome, "moves", res.Moves, "max", res.MaxTile, "took", res.Duration)
	return res, nil
}
