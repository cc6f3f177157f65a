package board

// Grid is a rectangular, row-major collection of tiles. A grid exclusively
// owns its tiles; Mirror always allocates fresh tiles so that two grids never
// share one.
type Grid struct {
	Rows, Cols int
	tiles      [][]*Tile
}

// NewGrid creates a grid of the given dimensions with every cell empty.
// Dimensions must be at least 1×1.
func NewGrid(rows, cols int) *Grid {
	if rows < 1 || cols < 1 {
		panic("board: grid dimensions must be positive")
	}
	tiles := make([][]*Tile, rows)
	for r := range tiles {
		tiles[r] = make([]*Tile, cols)
	}
	return &Grid{Rows: rows, Cols: cols, tiles: tiles}
}

// InBounds reports whether the position lies within the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// TileAt returns the tile at the given position, or nil when the position is
// out of bounds or the cell has not been filled yet.
func (g *Grid) TileAt(col, row int) *Tile {
	if !g.InBounds(col, row) {
		return nil
	}
	return g.tiles[row][col]
}

// SetTile places a tile into its cell. The tile's own position fields decide
// the cell; out-of-bounds tiles are ignored.
func (g *Grid) SetTile(t *Tile) {
	if t == nil || !g.InBounds(t.Col, t.Row) {
		return
	}
	g.tiles[t.Row][t.Col] = t
}

// Neighbor returns the tile adjacent to the given position in the given
// direction, or nil at the grid edge.
func (g *Grid) Neighbor(col, row int, d Direction) *Tile {
	dcol, drow := d.Delta()
	return g.TileAt(col+dcol, row+drow)
}

// RotateAt rotates the tile at the given position one quarter-turn clockwise.
// It reports whether a tile was rotated; out-of-bounds positions are a no-op.
func (g *Grid) RotateAt(col, row int) bool {
	t := g.TileAt(col, row)
	if t == nil {
		return false
	}
	t.Rotate()
	return true
}

// ForEachTile visits every filled cell in row-major order.
func (g *Grid) ForEachTile(fn func(t *Tile)) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if t := g.tiles[row][col]; t != nil {
				fn(t)
			}
		}
	}
}

// AllBlank reports whether every tile in the grid is the Blank archetype.
// Such a board has nothing to solve and is rejected by the puzzle layer.
func (g *Grid) AllBlank() bool {
	blank := true
	g.ForEachTile(func(t *Tile) {
		if t.Archetype != Blank {
			blank = false
		}
	})
	return blank
}
