package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/loopgrid/internal/board"
	"github.com/samdwyer/loopgrid/internal/puzzle"
	"github.com/samdwyer/loopgrid/internal/theme"
)

// glyphs maps a tile's connector set, packed as bit 1<<Direction, to its
// box-drawing rune.
var glyphs = [16]rune{
	0:  ' ',
	1:  '╵', // top
	2:  '╶', // right
	4:  '╷', // bottom
	8:  '╴', // left
	5:  '│', // top+bottom
	10: '─', // right+left
	3:  '└', // top+right
	6:  '┌', // right+bottom
	12: '┐', // bottom+left
	9:  '┘', // top+left
	7:  '├', // top+right+bottom
	14: '┬', // right+bottom+left
	13: '┤', // top+bottom+left
	11: '┴', // top+right+left
	15: '┼',
}

// Renderer draws a puzzle centered in the viewport, one terminal cell per
// tile, and remembers the layout so mouse positions can be mapped back to
// board cells.
type Renderer struct {
	screen *Screen

	originX, originY int
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the board, the cursor marker, and the status line.
// When solved is true every tile uses the theme's solved color.
func (r *Renderer) Render(p *puzzle.Puzzle, th theme.Theme, cursorCol, cursorRow int, solved bool) {
	width, height := r.screen.Size()
	background := tcell.StyleDefault.Background(th.Background)
	r.screen.Fill(background)

	grid := p.Grid
	r.originX = (width - grid.Cols) / 2
	r.originY = (height - 1 - grid.Rows) / 2

	grid.ForEachTile(func(t *board.Tile) {
		style := background.Foreground(r.tileColor(p, t, th, solved))
		if t.Col == cursorCol && t.Row == cursorRow && !solved {
			style = style.Background(th.Cursor).Foreground(th.Background)
		}
		r.screen.SetContent(r.originX+t.Col, r.originY+t.Row, tileGlyph(t), style)
	})

	r.renderStatus(p, th, solved, height-1)
	r.screen.Show()
}

// tileColor picks the foreground for one tile: solved flash when the board
// is done, the open highlight when any of the tile's connectors is
// unmatched, the conduit color otherwise.
func (r *Renderer) tileColor(p *puzzle.Puzzle, t *board.Tile, th theme.Theme, solved bool) tcell.Color {
	if solved {
		return th.Solved
	}
	for _, d := range t.Connectors() {
		if p.Open.Has(board.OpenConnection{Col: t.Col, Row: t.Row, Direction: d}) {
			return th.Open
		}
	}
	return th.Conduit
}

// renderStatus draws the one-line status bar at the bottom of the screen.
func (r *Renderer) renderStatus(p *puzzle.Puzzle, th theme.Theme, solved bool, y int) {
	var msg string
	if solved {
		msg = fmt.Sprintf(" solved in %d moves · n: new loop · q: quit", p.Moves())
	} else {
		msg = fmt.Sprintf(" %d×%d · moves %d · open %d · n: new · q: quit",
			p.Grid.Cols, p.Grid.Rows, p.Moves(), p.Open.Size())
	}

	style := tcell.StyleDefault.Background(th.Background).Foreground(th.Conduit)
	if solved {
		style = style.Foreground(th.Solved).Bold(true)
	}
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

// CellAt maps screen coordinates from the last Render to a board position.
// The second return is false when the point lies outside the board.
func (r *Renderer) CellAt(p *puzzle.Puzzle, x, y int) (col, row int, ok bool) {
	col = x - r.originX
	row = y - r.originY
	if !p.Grid.InBounds(col, row) {
		return 0, 0, false
	}
	return col, row, true
}

// tileGlyph returns the box-drawing rune for the tile's current connectors.
func tileGlyph(t *board.Tile) rune {
	idx := 0
	for _, d := range t.Connectors() {
		idx |= 1 << d
	}
	return glyphs[idx]
}
