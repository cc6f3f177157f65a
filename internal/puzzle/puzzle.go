// Package puzzle assembles playable loop puzzles and tracks their solve
// state across rotations.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/loopgrid/internal/board"
	"github.com/samdwyer/loopgrid/internal/telemetry"
)

// ErrNoPlayableBoard is returned when every generated board within the
// attempt ceiling was all-blank (nothing to solve).
var ErrNoPlayableBoard = errors.New("no playable board within attempt limit")

// Puzzle is one playable board: a scrambled grid plus the set of currently
// open connections. The puzzle is solved when the open set is empty.
//
// The grid and open set are single-writer structures: one RotateAt call
// completes its mutation and scoped recompute before the next begins. The
// host event loop provides that ordering.
type Puzzle struct {
	ID   uuid.UUID
	Grid *board.Grid
	Open board.OpenSet

	moves int
}

// New generates, optionally mirrors, and shuffles a board according to opts.
// A nil rng gets one seeded from opts.Seed, or from the clock when the seed
// is zero. All-blank boards are rejected and regenerated, up to
// opts.MaxAttempts times.
func New(ctx context.Context, opts Options, rng *rand.Rand) (*Puzzle, error) {
	opts = opts.normalized()
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	tracer := telemetry.Tracer("puzzle")
	ctx, span := tracer.Start(ctx, "puzzle.new")
	defer span.End()

	gen := board.NewGenerator(rng)

	var (
		grid     *board.Grid
		open     board.OpenSet
		attempts int
	)
	for attempts = 1; attempts <= opts.MaxAttempts; attempts++ {
		g, err := gen.Generate(ctx, opts.Rows, opts.Cols)
		if err != nil {
			return nil, err
		}
		if opts.MirrorHorizontal || opts.MirrorVertical {
			g = board.Mirror(g, opts.MirrorHorizontal, opts.MirrorVertical)
		}
		if g.AllBlank() {
			// Nothing to solve on an all-blank board; roll again.
			continue
		}
		grid = g
		open = board.Shuffle(grid, rng)
		break
	}
	if grid == nil {
		return nil, fmt.Errorf("%w (%d attempts, %dx%d)",
			ErrNoPlayableBoard, opts.MaxAttempts, opts.Rows, opts.Cols)
	}

	p := &Puzzle{
		ID:   uuid.New(),
		Grid: grid,
		Open: open,
	}

	span.SetAttributes(
		attribute.String("puzzle.id", p.ID.String()),
		attribute.Int("puzzle.rows", grid.Rows),
		attribute.Int("puzzle.cols", grid.Cols),
		attribute.Int("puzzle.attempts", attempts),
		attribute.Int("puzzle.open_connections", open.Size()),
	)
	return p, nil
}

// RotateAt rotates the tile at the given position one quarter-turn clockwise
// and updates the open-connection set by re-analyzing only that tile and its
// immediate neighbors, at most five cells regardless of board size.
// Out-of-bounds positions are a no-op.
func (p *Puzzle) RotateAt(col, row int) {
	if !p.Grid.RotateAt(col, row) {
		return
	}
	p.moves++
	p.recompute(col, row)
}

// recompute refreshes the open set for the rotated cell and its neighbors:
// every stale entry at an affected position is dropped, then each affected
// tile is re-analyzed against the current grid.
func (p *Puzzle) recompute(col, row int) {
	type cell struct{ col, row int }

	affected := []cell{{col, row}}
	for _, d := range board.Directions() {
		if n := p.Grid.Neighbor(col, row, d); n != nil {
			affected = append(affected, cell{n.Col, n.Row})
		}
	}

	var stale []board.OpenConnection
	p.Open.Each(func(oc board.OpenConnection) {
		for _, c := range affected {
			if oc.Col == c.col && oc.Row == c.row {
				stale = append(stale, oc)
				break
			}
		}
	})
	for _, oc := range stale {
		p.Open.Remove(oc)
	}

	for _, c := range affected {
		for _, oc := range board.OpenConnectionsAt(p.Grid, c.col, c.row) {
			p.Open.Put(oc)
		}
	}
}

// Solved reports whether every connector on the board is matched.
func (p *Puzzle) Solved() bool {
	return p.Open.Size() == 0
}

// Moves returns how many tile rotations the player has made.
func (p *Puzzle) Moves() int {
	return p.moves
}
