package board

import (
	"context"
	"math/rand"
	"testing"
)

func generateForTest(t *testing.T, rows, cols int, seed int64) *Grid {
	t.Helper()
	g, err := NewGenerator(rand.New(rand.NewSource(seed))).Generate(context.Background(), rows, cols)
	if err != nil {
		t.Fatalf("Generate(%d,%d): %v", rows, cols, err)
	}
	return g
}

func TestMirrorHorizontalSymmetry(t *testing.T) {
	src := generateForTest(t, 5, 8, 7)
	m := Mirror(src, true, false)

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			tile := m.TileAt(col, row)
			twin := m.TileAt(m.Cols-1-col, row)
			if tile.Archetype != twin.Archetype {
				t.Errorf("(%d,%d) archetype %v, twin %v", col, row, tile.Archetype, twin.Archetype)
			}
			if tile.mask() != twin.mask().flippedHoriz() {
				t.Errorf("(%d,%d) connectors %04b are not the mirror of twin's %04b",
					col, row, tile.mask(), twin.mask())
			}
		}
	}
}

func TestMirrorVerticalSymmetry(t *testing.T) {
	src := generateForTest(t, 6, 5, 11)
	m := Mirror(src, false, true)

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			tile := m.TileAt(col, row)
			twin := m.TileAt(col, m.Rows-1-row)
			if tile.Archetype != twin.Archetype {
				t.Errorf("(%d,%d) archetype %v, twin %v", col, row, tile.Archetype, twin.Archetype)
			}
			if tile.mask() != twin.mask().flippedVert() {
				t.Errorf("(%d,%d) connectors %04b are not the mirror of twin's %04b",
					col, row, tile.mask(), twin.mask())
			}
		}
	}
}

func TestMirrorEvenAxesStayConsistent(t *testing.T) {
	tests := []struct {
		rows, cols  int
		horiz, vert bool
	}{
		{4, 8, true, false},
		{4, 8, false, true},
		{4, 8, true, true},
		{6, 6, true, true},
		{2, 2, true, true},
	}

	for _, tt := range tests {
		src := generateForTest(t, tt.rows, tt.cols, 23)
		m := Mirror(src, tt.horiz, tt.vert)
		assertConsistent(t, m)
	}
}

func TestMirrorFirstHalfCopiedVerbatim(t *testing.T) {
	src := generateForTest(t, 5, 9, 31)
	m := Mirror(src, true, false)

	// ceil(9/2) = 5 leading columns, center included, are unreflected.
	for row := 0; row < m.Rows; row++ {
		for col := 0; col < 5; col++ {
			tile := m.TileAt(col, row)
			orig := src.TileAt(col, row)
			if tile.Archetype != orig.Archetype || tile.Orientation() != orig.Orientation() {
				t.Errorf("(%d,%d) = %v/%v, want verbatim copy %v/%v",
					col, row, tile.Archetype, tile.Orientation(), orig.Archetype, orig.Orientation())
			}
		}
	}
}

func TestMirrorDoesNotAliasTiles(t *testing.T) {
	src := generateForTest(t, 3, 4, 17)
	m := Mirror(src, true, false)

	before := src.TileAt(0, 0).Orientation()
	m.RotateAt(0, 0)
	if src.TileAt(0, 0).Orientation() != before {
		t.Error("rotating the mirrored grid mutated the source grid")
	}
	if src.TileAt(0, 0) == m.TileAt(0, 0) {
		t.Error("mirrored grid shares a tile with the source grid")
	}
}

func TestMirrorNoAxes(t *testing.T) {
	src := generateForTest(t, 3, 3, 19)
	m := Mirror(src, false, false)

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			tile := m.TileAt(col, row)
			orig := src.TileAt(col, row)
			if tile.Archetype != orig.Archetype || tile.Orientation() != orig.Orientation() {
				t.Errorf("(%d,%d): mirror with no axes should copy verbatim", col, row)
			}
		}
	}
}
