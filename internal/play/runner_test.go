package play

import (
	"context"
	"errors"
	"testing"

	"github.com/vovakirdan/bot2048/internal/board"
	"github.com/vovakirdan/bot2048/internal/rng"
	"github.com/vovakirdan/bot2048/internal/search"
)

// fixedPlayer always answers with the same move or error.
type fixedPlayer struct {
	move  board.Direction
	err   error
	calls int
}

func (p *fixedPlayer) SetBoard(board.Board) {}

func (p *fixedPlayer) BestMoveContext(context.Context) (board.Direction, error) {
	p.calls++
	return p.move, p.err
}

func mustBoard(t *testing.T, values [board.Area]int) board.Board {
	t.Helper()
	b, err := board.FromValues(values)
	if err != nil {
		t.Fatalf("FromValues(%v) failed: %v", values, err)
	}
	return b
}

func TestDeterministicGame(t *testing.T) {
	play := func() Result {
		src := rng.NewSeeded(12345, rng.DefaultWeight)
		r := NewRunner(search.New(search.WithLookahead(1)), src)
		r.MaxMoves = 200
		res, err := r.Run(context.Background(), board.NewSeeded(src))
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		return res
	}

	first, second := play(), play()
	if first.Board != second.Board || first.Moves != second.Moves || first.Outcome != second.Outcome {
		t.Errorf("same seed should replay the same game:\n%+v\nvs\n%+v", first, second)
	}
}

func TestFullGameEnds(t *testing.T) {
	src := rng.NewSeeded(7, rng.DefaultWeight)
	r := NewRunner(search.New(search.WithLookahead(1)), src)

	steps := 0
	r.OnStep = func(s Step) {
		steps++
		if s.Index != steps {
			t.Errorf("step index = %d, want %d", s.Index, steps)
		}
	}

	res, err := r.Run(context.Background(), board.NewSeeded(src))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if steps != res.Moves {
		t.Errorf("OnStep called %d times for %d moves", steps, res.Moves)
	}
	if res.MaxTile != res.Board.MaxTile() {
		t.Errorf("MaxTile = %d, board says %d", res.MaxTile, res.Board.MaxTile())
	}

	switch res.Outcome {
	case OutcomeLost:
		if res.Board.IsChangeable() {
			t.Error("lost game should end on a locked board")
		}
	case OutcomeWon:
		if !res.Board.IsWon() {
			t.Error("won game should hold a 2048 tile")
		}
	case OutcomeMoveLimit:
		if res.Moves != DefaultMaxMoves {
			t.Errorf("move limit hit after %d moves, want %d", res.Moves, DefaultMaxMoves)
		}
	default:
		t.Errorf("unexpected outcome %q", res.Outcome)
	}
}

func TestMoveLimit(t *testing.T) {
	src := rng.NewSeeded(1, rng.DefaultWeight)
	r := NewRunner(search.New(search.WithLookahead(1)), src)
	r.MaxMoves = 5

	res, err := r.Run(context.Background(), board.NewSeeded(src))
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Outcome != OutcomeMoveLimit || res.Moves != 5 {
		t.Errorf("Run() = %s after %d moves, want move_limit after 5", res.Outcome, res.Moves)
	}
}

func TestAlreadyFinished(t *testing.T) {
	won := [board.Area]int{}
	won[0] = 2048

	tests := []struct {
		name   string
		values [board.Area]int
		want   Outcome
	}{
		{"won", won, OutcomeWon},
		{"locked", [board.Area]int{
			2, 4, 8, 16,
			32, 64, 128, 256,
			512, 1024, 4, 8,
			8, 16, 32, 64,
		}, OutcomeLost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &fixedPlayer{}
			r := NewRunner(p, rng.NewSeeded(1, rng.DefaultWeight))
			res, err := r.Run(context.Background(), mustBoard(t, tt.values))
			if err != nil {
				t.Fatalf("Run() failed: %v", err)
			}
			if res.Outcome != tt.want || res.Moves != 0 {
				t.Errorf("Run() = %s after %d moves, want %s after 0", res.Outcome, res.Moves, tt.want)
			}
			if p.calls != 0 {
				t.Errorf("player asked %d times, want 0", p.calls)
			}
		})
	}
}

func TestPlayerErrors(t *testing.T) {
	start := mustBoard(t, [board.Area]int{
		2, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})

	t.Run("no move ends the game", func(t *testing.T) {
		r := NewRunner(&fixedPlayer{err: search.ErrNoMove}, rng.NewSeeded(1, rng.DefaultWeight))
		res, err := r.Run(context.Background(), start)
		if err != nil {
			t.Fatalf("Run() failed: %v", err)
		}
		if res.Outcome != OutcomeLost {
			t.Errorf("Outcome = %s, want lost", res.Outcome)
		}
	})

	t.Run("cancellation is returned", func(t *testing.T) {
		r := NewRunner(&fixedPlayer{err: context.Canceled}, rng.NewSeeded(1, rng.DefaultWeight))
		if _, err := r.Run(context.Background(), start); !errors.Is(err, context.Canceled) {
			t.Errorf("Run() err = %v, want context.Canceled", err)
		}
	})

	t.Run("illegal move is an error", func(t *testing.T) {
		// Up does not move a tile already in the top row.
		r := NewRunner(&fixedPlayer{move: board.DirUp}, rng.NewSeeded(1, rng.DefaultWeight))
		if _, err := r.Run(context.Background(), start); err == nil {
			t.Error("Run() should fail on a move that changes nothing")
		}
	})

	t.Run("missing collaborators", func(t *testing.T) {
		r := &Runner{}
		if _, err := r.Run(context.Background(), start); err == nil {
			t.Error("Run() should fail without a player")
		}
	})
}
