package board

import "github.com/zyedidia/generic/mapset"

// OpenConnection records that the tile at (Col, Row) currently exposes a
// connector in Direction that no neighbor matches. An empty set of open
// connections is the win condition.
type OpenConnection struct {
	Col, Row  int
	Direction Direction
}

// OpenSet is the current collection of open connections, deduplicated by
// (position, direction).
type OpenSet = mapset.Set[OpenConnection]

// NewOpenSet creates an empty open-connection set.
func NewOpenSet() OpenSet {
	return mapset.New[OpenConnection]()
}

// OpenConnectionsAt returns the open connections of the tile at the given
// position. A connector is open when the tile sits at the grid edge in that
// direction, or when the neighbor there lacks the facing connector. Matching
// is presence parity only: any two archetypes are compatible across an edge.
func OpenConnectionsAt(g *Grid, col, row int) []OpenConnection {
	t := g.TileAt(col, row)
	if t == nil {
		return nil
	}
	var open []OpenConnection
	for _, d := range t.Connectors() {
		neighbor := g.Neighbor(col, row, d)
		if neighbor == nil || !neighbor.HasConnector(d.Opposite()) {
			open = append(open, OpenConnection{Col: col, Row: row, Direction: d})
		}
	}
	return open
}

// OpenConnections sweeps the whole grid and returns every open connection.
// The puzzle layer uses this once per shuffle; afterwards the incremental
// path in Puzzle.RotateAt keeps the set current. Tests use it as the oracle
// for that incremental path.
func OpenConnections(g *Grid) OpenSet {
	set := NewOpenSet()
	g.ForEachTile(func(t *Tile) {
		for _, oc := range OpenConnectionsAt(g, t.Col, t.Row) {
			set.Put(oc)
		}
	})
	return set
}
