package board

// Mirror returns a new grid in which the second half of each requested axis
// is a reflection of the first half. The split uses ceil(len/2), so the
// center line of an odd axis is its own mirror and is copied unreflected.
// Every destination cell gets a fresh tile; the source grid and its tiles are
// left untouched and never aliased.
//
// Reflected tiles keep the source archetype and take the orientation whose
// connector set is the geometric reflection of the source's. Mirroring a
// connector-consistent grid this way stays consistent along even-axis seams,
// because a reflected tile's seam-facing connector mirrors the source's.
func Mirror(g *Grid, horiz, vert bool) *Grid {
	out := NewGrid(g.Rows, g.Cols)

	splitCol := (g.Cols + 1) / 2
	splitRow := (g.Rows + 1) / 2

	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			srcCol, srcRow := col, row
			flipH, flipV := false, false

			if horiz && col >= splitCol {
				srcCol = g.Cols - 1 - col
				flipH = true
			}
			if vert && row >= splitRow {
				srcRow = g.Rows - 1 - row
				flipV = true
			}

			src := g.TileAt(srcCol, srcRow)
			if src == nil {
				continue
			}

			orientation := src.Orientation()
			if flipH || flipV {
				orientation = reflectedOrientation(src.Archetype, orientation, flipH, flipV)
			}
			out.SetTile(NewTile(src.Archetype, col, row, orientation))
		}
	}
	return out
}

// reflectedOrientation finds the orientation at which the archetype's
// connector set equals the reflection of its set at the given orientation.
// Every reflection of a rotated base set is itself a rotation of that base
// set, so the search always succeeds; for Blank and Cross every orientation
// matches and the first one is taken.
func reflectedOrientation(a Archetype, o Direction, flipH, flipV bool) Direction {
	want := a.baseMask().rotated(o)
	if flipH {
		want = want.flippedHoriz()
	}
	if flipV {
		want = want.flippedVert()
	}
	for _, d := range Directions() {
		if a.baseMask().rotated(d) == want {
			return d
		}
	}
	return o
}

// flippedHoriz reflects the mask across the vertical axis (Right↔Left).
func (m connectorMask) flippedHoriz() connectorMask {
	out := m & (1<<Top | 1<<Bottom)
	if m.has(Right) {
		out |= 1 << Left
	}
	if m.has(Left) {
		out |= 1 << Right
	}
	return out
}

// flippedVert reflects the mask across the horizontal axis (Top↔Bottom).
func (m connectorMask) flippedVert() connectorMask {
	out := m & (1<<Right | 1<<Left)
	if m.has(Top) {
		out |= 1 << Bottom
	}
	if m.has(Bottom) {
		out |= 1 << Top
	}
	return out
}
