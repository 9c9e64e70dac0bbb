// Package search implements the 2048 bot: a depth-bounded expectimax over
// every legal move and every possible tile placement.
package search

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/bot2048/internal/board"
)

// DefaultLookahead is the number of plies (move plus placement) searched.
const DefaultLookahead = 3

// ErrNoMove is returned when no direction changes the board.
var ErrNoMove = errors.New("search: no move available")

// placements are the exponents tried for every empty cell. Both count equally
// inside the search, unlike real play.
var placements = [2]uint8{1, 2}

// Result is the outcome of evaluating one search node.
type Result struct {
	Move  board.Direction // best first move; meaningful only if Found
	Value float64         // expected value of the node
	Found bool            // whether any direction changed the board
}

// Bot picks moves by expectimax search over a private copy of a board.
type Bot struct {
	board     board.Board
	lookahead int
	workers   int
	logger    *log.Logger
}

// Option configures a Bot.
type Option func(*Bot)

// WithLookahead sets the search depth in plies. Values below 1 are ignored.
func WithLookahead(plies int) Option {
	return func(b *Bot) {
		if plies >= 1 {
			b.lookahead = plies
		}
	}
}

// WithWorkers sets how many root directions are evaluated concurrently.
// 1 keeps the search fully sequential.
func WithWorkers(n int) Option {
	return func(b *Bot) {
		if n >= 1 {
			b.workers = n
		}
	}
}

// WithLogger sets the logger used for per-direction debug output.
func WithLogger(l *log.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a bot with an empty board.
func New(opts ...Option) *Bot {
	b := &Bot{
		board:     board.New(),
		lookahead: DefaultLookahead,
		workers:   1,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetBoard stores a copy of gb. Later changes to the caller's board do not affect the bot.
func (b *Bot) SetBoard(gb board.Board) {
	b.board = gb
}

// Board returns the bot's copy of the board.
func (b *Bot) Board() board.Board {
	return b.board
}

// Lookahead returns the search depth in plies.
func (b *Bot) Lookahead() int {
	return b.lookahead
}

// BestMove searches from the stored board and returns the chosen direction.
// Callers should check IsChangeable first; ErrNoMove is returned otherwise.
func (b *Bot) BestMove() (board.Direction, error) {
	return b.BestMoveContext(context.Background())
}

// BestMoveContext is BestMove with cancellation.
func (b *Bot) BestMoveContext(ctx context.Context) (board.Direction, error) {
	res, err := b.root(ctx, b.board)
	if err != nil {
		return 0, err
	}
	if !res.Found {
		return 0, ErrNoMove
	}
	return res.Move, nil
}

// Evaluate runs the expectimax node for gb at the given depth.
func (b *Bot) Evaluate(gb board.Board, depth int) Result {
	// Background is never cancelled.
	res, _ := b.evaluate(context.Background(), gb, depth)
	return res
}

// branch accumulates the placement outcomes of one legal direction.
type branch struct {
	dir   board.Direction
	legal bool
	sum   float64
	count int
}

func (br branch) average() float64 {
	return br.sum / float64(br.count)
}

// root evaluates the top node, fanning directions out to workers when configured.
func (b *Bot) root(ctx context.Context, gb board.Board) (Result, error) {
	if b.workers <= 1 || b.lookahead < 1 || !gb.IsChangeable() {
		res, err := b.evaluate(ctx, gb, 0)
		if err == nil {
			b.logBest(res)
		}
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var branches [len(board.Directions)]branch
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, d := range board.Directions {
		moved, changed := gb.CloneAndMove(d)
		if !changed {
			continue
		}
		g.Go(func() error {
			br, err := b.chance(gctx, moved, 0)
			if err != nil {
				return err
			}
			br.dir = d
			branches[i] = br
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := b.combine(gb, branches[:], 0)
	b.logBest(res)
	return res, nil
}

// evaluate returns the expected value of gb and, for interior nodes, the best direction.
// The node value averages over every legal direction's placements, while the
// move is the argmax of the per-direction averages.
func (b *Bot) evaluate(ctx context.Context, gb board.Board, depth int) (Result, error) {
	if depth >= b.lookahead || !gb.IsChangeable() {
		return Result{Value: gb.Eval()}, nil
	}
	if depth <= 1 {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
	}

	var branches [len(board.Directions)]branch
	for i, d := range board.Directions {
		moved, changed := gb.CloneAndMove(d)
		if !changed {
			continue
		}
		br, err := b.chance(ctx, moved, depth)
		if err != nil {
			return Result{}, err
		}
		br.dir = d
		branches[i] = br
	}
	return b.combine(gb, branches[:], depth), nil
}

// chance sums the children of a moved board over every empty cell and both placements.
func (b *Bot) chance(ctx context.Context, moved board.Board, depth int) (branch, error) {
	br := branch{legal: true}
	zeros := moved.ZeroCount()
	for ordinal := 1; ordinal <= zeros; ordinal++ {
		for _, exp := range placements {
			placed := moved
			placed.AddTile(ordinal, exp)
			child, err := b.evaluate(ctx, placed, depth+1)
			if err != nil {
				return branch{}, err
			}
			br.sum += child.Value
			br.count++
		}
	}
	return br, nil
}

// combine folds direction branches into a node result.
// Ties keep the first direction in boundary-code order.
func (b *Bot) combine(gb board.Board, branches []branch, depth int) Result {
	var (
		res   Result
		sum   float64
		count int
		best  float64
	)
	for _, br := range branches {
		if !br.legal {
			continue
		}
		avg := br.average()
		if !res.Found || avg > best {
			res.Move = br.dir
			res.Found = true
			best = avg
		}
		sum += br.sum
		count += br.count

		if depth == 0 {
			b.logger.Debug("direction evaluated", "depth", depth, "move", br.dir, "sum", br.sum, "avg", avg)
		}
	}

	if count == 0 {
		// Changeable but nothing moves: the empty board.
		return Result{Value: gb.Eval()}
	}
	res.Value = sum / float64(count)
	return res
}

func (b *Bot) logBest(res Result) {
	if res.Found {
		b.logger.Debug("best move", "move", res.Move, "value", res.Value)
	}
}
