package board

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// assertConsistent fails the test unless every internal edge of the grid
// agrees on connector presence from both sides and no connector points past
// the boundary.
func assertConsistent(t *testing.T, g *Grid) {
	t.Helper()
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			tile := g.TileAt(col, row)
			if tile == nil {
				t.Fatalf("cell (%d,%d) is empty", col, row)
			}
			for _, d := range Directions() {
				neighbor := g.Neighbor(col, row, d)
				if neighbor == nil {
					if tile.HasConnector(d) {
						t.Errorf("tile (%d,%d): connector at %v points off the board", col, row, d)
					}
					continue
				}
				if tile.HasConnector(d) != neighbor.HasConnector(d.Opposite()) {
					t.Errorf("edge mismatch between (%d,%d) and (%d,%d) across %v",
						col, row, neighbor.Col, neighbor.Row, d)
				}
			}
		}
	}
}

func TestGenerateConsistency(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{1, 1},
		{1, 2},
		{2, 2},
		{3, 5},
		{6, 6},
		{9, 18},
	}

	gen := NewGenerator(rand.New(rand.NewSource(42)))
	ctx := context.Background()

	for _, size := range sizes {
		g, err := gen.Generate(ctx, size.rows, size.cols)
		if err != nil {
			t.Fatalf("Generate(%d,%d): %v", size.rows, size.cols, err)
		}
		if g.Rows != size.rows || g.Cols != size.cols {
			t.Fatalf("Generate(%d,%d) produced %dx%d grid",
				size.rows, size.cols, g.Rows, g.Cols)
		}
		assertConsistent(t, g)

		// A consistent grid has no open connections at all.
		if open := OpenConnections(g); open.Size() != 0 {
			t.Errorf("Generate(%d,%d): %d open connections on solved grid",
				size.rows, size.cols, open.Size())
		}
	}
}

func TestGenerateReproducibility(t *testing.T) {
	seed := int64(12345)
	ctx := context.Background()

	g1, err := NewGenerator(rand.New(rand.NewSource(seed))).Generate(ctx, 5, 8)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	g2, err := NewGenerator(rand.New(rand.NewSource(seed))).Generate(ctx, 5, 8)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	if diff := cmp.Diff(g1, g2, cmp.AllowUnexported(Grid{}, Tile{})); diff != "" {
		t.Errorf("same seed produced different grids (-first +second):\n%s", diff)
	}
}

func TestGenerateDifferentSeeds(t *testing.T) {
	ctx := context.Background()

	g1, err := NewGenerator(rand.New(rand.NewSource(12345))).Generate(ctx, 5, 8)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	g2, err := NewGenerator(rand.New(rand.NewSource(54321))).Generate(ctx, 5, 8)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	// A 5×8 board has far too many valid tilings for two seeds to collide.
	if diff := cmp.Diff(g1, g2, cmp.AllowUnexported(Grid{}, Tile{})); diff == "" {
		t.Error("different seeds produced identical grids")
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	gen := NewGenerator(rand.New(rand.NewSource(1)))
	ctx := context.Background()

	for _, size := range []struct{ rows, cols int }{{0, 5}, {5, 0}, {-1, 3}} {
		_, err := gen.Generate(ctx, size.rows, size.cols)
		if !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Generate(%d,%d) error = %v, want ErrInvalidSize", size.rows, size.cols, err)
		}
	}
}

func TestGenerateNilRandSource(t *testing.T) {
	// A nil rng must not panic; the generator seeds itself.
	g, err := NewGenerator(nil).Generate(context.Background(), 3, 3)
	if err != nil {
		t.Fatalf("Generate with nil rng: %v", err)
	}
	assertConsistent(t, g)
}
