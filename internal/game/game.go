package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/loopgrid/internal/puzzle"
	"github.com/samdwyer/loopgrid/internal/telemetry"
	"github.com/samdwyer/loopgrid/internal/theme"
	"github.com/samdwyer/loopgrid/internal/ui"
)

// Game holds the entire session state.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	themes   *theme.Registry

	cfg Config
	rng *rand.Rand

	puz     *puzzle.Puzzle
	theme   theme.Theme
	state   State
	running bool

	cursorCol, cursorRow int
}

// New creates a new game instance from the given configuration.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	themes, err := theme.LoadRegistry()
	if err != nil {
		screen.Close()
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		themes:   themes,
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		state:    StatePlaying,
		running:  true,
	}, nil
}

// Run executes the main event loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	ctx, initSpan := tracer.Start(ctx, "game.init")
	err := g.newPuzzle(ctx)
	if err == nil {
		initSpan.SetAttributes(
			attribute.Int("board.rows", g.puz.Grid.Rows),
			attribute.Int("board.cols", g.puz.Grid.Cols),
			attribute.String("theme.id", g.theme.ID),
		)
	}
	initSpan.End()
	if err != nil {
		g.screen.Close()
		return err
	}

	for g.running {
		g.renderer.Render(g.puz, g.theme, g.cursorCol, g.cursorRow, g.state == StateSolved)
		if err := g.handleInput(ctx); err != nil {
			g.screen.Close()
			return err
		}
	}

	g.screen.Close()
	return nil
}

// newPuzzle generates a fresh board sized to the current viewport and picks
// a theme for it.
func (g *Game) newPuzzle(ctx context.Context) error {
	mode := g.cfg.Mode
	if !g.cfg.HasMode {
		mode = RandomMode(g.rng)
	}

	width, height := g.screen.Size()
	rows, cols := BoardSize(mode, width, height, g.cfg)

	opts := puzzle.Options{
		Rows:        rows,
		Cols:        cols,
		MaxAttempts: puzzle.DefaultMaxAttempts,
	}
	// Mirroring is an aesthetic variant of the viewport-fitted modes only.
	if mode != ModeCustom {
		opts.MirrorHorizontal = g.cfg.MirrorHorizontal
		opts.MirrorVertical = g.cfg.MirrorVertical
	}

	puz, err := puzzle.New(ctx, opts, g.rng)
	if err != nil {
		return err
	}

	g.puz = puz
	g.theme = g.pickTheme()
	g.state = StatePlaying
	if g.puz.Solved() {
		// A shuffle can land on the solved arrangement outright.
		g.state = StateSolved
	}
	g.cursorCol = cols / 2
	g.cursorRow = rows / 2
	return nil
}

// pickTheme resolves the configured theme ID, or picks one at random.
func (g *Game) pickTheme() theme.Theme {
	if g.cfg.Theme != "" {
		if t, ok := g.themes.Lookup(g.cfg.Theme); ok {
			return t
		}
	}
	return g.themes.PickRandom(g.rng)
}

// handleInput processes a single terminal event.
func (g *Game) handleInput(ctx context.Context) error {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		g.handleMouseEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		g.moveCursor(0, -1)
	case tcell.KeyDown:
		g.moveCursor(0, 1)
	case tcell.KeyLeft:
		g.moveCursor(-1, 0)
	case tcell.KeyRight:
		g.moveCursor(1, 0)

	case tcell.KeyEnter:
		g.rotate(g.cursorCol, g.cursorRow)

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.rotate(g.cursorCol, g.cursorRow)
		case 'n', 'N':
			return g.newPuzzle(ctx)
		case 'q', 'Q':
			g.running = false
		}
	}
	return nil
}

// handleMouseEvent rotates the clicked tile.
func (g *Game) handleMouseEvent(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	if col, row, ok := g.renderer.CellAt(g.puz, x, y); ok {
		g.cursorCol, g.cursorRow = col, row
		g.rotate(col, row)
	}
}

// moveCursor shifts the cursor, clamped to the board.
func (g *Game) moveCursor(dcol, drow int) {
	if g.puz.Grid.InBounds(g.cursorCol+dcol, g.cursorRow+drow) {
		g.cursorCol += dcol
		g.cursorRow += drow
	}
}

// rotate turns one tile and refreshes the session state from the updated
// open-connection set.
func (g *Game) rotate(col, row int) {
	g.puz.RotateAt(col, row)
	if g.puz.Solved() {
		g.state = StateSolved
	} else {
		g.state = StatePlaying
	}
}

// Close cleans up terminal resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
