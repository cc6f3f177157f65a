package board

import "math/rand"

// Shuffle scrambles the grid in place by giving every tile an independent,
// uniformly random number of quarter-turns in 0..3, then sweeps the whole
// board once for the initial open-connection set. This per-tile scramble is
// what turns the solved reference grid into a puzzle; a global rotation would
// keep neighbors aligned.
func Shuffle(g *Grid, rng *rand.Rand) OpenSet {
	g.ForEachTile(func(t *Tile) {
		for turns := rng.Intn(4); turns > 0; turns-- {
			t.Rotate()
		}
	})
	return OpenConnections(g)
}
