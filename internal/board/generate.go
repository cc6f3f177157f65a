package board

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/loopgrid/internal/telemetry"
)

// MaxGenerateAttempts bounds the wholesale-restart loop. A dead end discards
// the whole partial grid and starts over; once the ceiling is reached
// Generate gives up with ErrGenerationFailed instead of looping forever.
const MaxGenerateAttempts = 64

var (
	// ErrGenerationFailed is returned when no consistent grid could be
	// produced within MaxGenerateAttempts restarts.
	ErrGenerationFailed = errors.New("failed to generate a consistent grid")
	// ErrInvalidSize is returned for grids smaller than 1×1.
	ErrInvalidSize = errors.New("grid dimensions must be at least 1x1")

	errDeadEnd = errors.New("no valid candidate for cell")
)

// Generator fills grids with connector-consistent tiles.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from the given random source.
// A nil rng gets a time-seeded one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// candidate is one (archetype, orientation) placement option for a cell.
type candidate struct {
	archetype   Archetype
	orientation Direction
}

// Generate produces a rows×cols grid in which every connector is matched:
// each internal edge agrees on connector presence from both sides and no
// connector points past the grid boundary. This is the solved reference
// state; Shuffle turns it into a puzzle.
//
// Cells are filled in row-major order, choosing uniformly among the
// (archetype, orientation) pairs consistent with the boundary and the
// already-placed left and top neighbors. A cell with no consistent pair
// aborts the attempt and restarts from an empty grid.
func (g *Generator) Generate(ctx context.Context, rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}

	tracer := telemetry.Tracer("board")
	ctx, span := tracer.Start(ctx, "board.generate")
	defer span.End()

	startTime := time.Now()
	attempts := 0

	grid, err := backoff.Retry(ctx, func() (*Grid, error) {
		attempts++
		return g.fill(rows, cols)
	}, backoff.WithBackOff(&backoff.ZeroBackOff{}), backoff.WithMaxTries(MaxGenerateAttempts))

	span.SetAttributes(
		attribute.Int("board.rows", rows),
		attribute.Int("board.cols", cols),
		attribute.Int("board.generate_attempts", attempts),
		attribute.Int64("board.generate_us", time.Since(startTime).Microseconds()),
	)

	if err != nil {
		return nil, fmt.Errorf("%w after %d attempts: %w", ErrGenerationFailed, attempts, err)
	}
	return grid, nil
}

// fill runs a single generation attempt.
func (g *Generator) fill(rows, cols int) (*Grid, error) {
	grid := NewGrid(rows, cols)
	candidates := make([]candidate, 0, len(Archetypes())*4)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			candidates = candidates[:0]
			for _, a := range Archetypes() {
				for _, o := range Directions() {
					if fits(grid, a, o, col, row) {
						candidates = append(candidates, candidate{a, o})
					}
				}
			}
			if len(candidates) == 0 {
				return nil, errDeadEnd
			}
			pick := candidates[g.rng.Intn(len(candidates))]
			grid.SetTile(NewTile(pick.archetype, col, row, pick.orientation))
		}
	}
	return grid, nil
}

// fits reports whether placing the archetype at the given orientation keeps
// the partial grid consistent. Only the left and top neighbors exist in
// row-major scan order, so those two parities plus the boundary rule are the
// whole constraint.
func fits(g *Grid, a Archetype, o Direction, col, row int) bool {
	m := a.baseMask().rotated(o)

	if row == 0 && m.has(Top) {
		return false
	}
	if row == g.Rows-1 && m.has(Bottom) {
		return false
	}
	if col == 0 && m.has(Left) {
		return false
	}
	if col == g.Cols-1 && m.has(Right) {
		return false
	}

	if left := g.TileAt(col-1, row); left != nil && left.HasConnector(Right) != m.has(Left) {
		return false
	}
	if top := g.TileAt(col, row-1); top != nil && top.HasConnector(Bottom) != m.has(Top) {
		return false
	}
	return true
}
