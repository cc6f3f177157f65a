package theme

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Def is one theme as defined in themes.json. Colors are hex strings.
type Def struct {
	ID         string `json:"id"`         // Unique identifier (e.g., "slate")
	Name       string `json:"name"`       // Display name
	Background string `json:"background"` // Board background
	Conduit    string `json:"conduit"`    // Matched tile connectors
	Open       string `json:"open"`       // Open-connection highlight
	Cursor     string `json:"cursor"`     // Cursor cell marker
	Weight     int    `json:"weight"`     // Random-pick weight
}

// defsFile represents the structure of themes.json.
type defsFile struct {
	Themes []Def `json:"themes"`
}

// Theme is a ready-to-render palette.
type Theme struct {
	ID   string
	Name string

	Background tcell.Color
	Conduit    tcell.Color
	Open       tcell.Color
	Cursor     tcell.Color
	// Solved is derived from Conduit, lifted toward white, and is used to
	// flash the whole board once no open connections remain.
	Solved tcell.Color
}

// build parses a definition's hex colors and derives the solved color.
func (d *Def) build() (Theme, error) {
	background, err := parseHex(d.Background)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s background: %w", d.ID, err)
	}
	conduit, err := parseHex(d.Conduit)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s conduit: %w", d.ID, err)
	}
	open, err := parseHex(d.Open)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s open: %w", d.ID, err)
	}
	cursor, err := parseHex(d.Cursor)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %s cursor: %w", d.ID, err)
	}

	white := colorful.Color{R: 1, G: 1, B: 1}
	solved := conduit.BlendLab(white, 0.45).Clamped()

	return Theme{
		ID:         d.ID,
		Name:       d.Name,
		Background: toTCell(background),
		Conduit:    toTCell(conduit),
		Open:       toTCell(open),
		Cursor:     toTCell(cursor),
		Solved:     toTCell(solved),
	}, nil
}

// parseHex converts a "#RRGGBB" string into a colorful color.
func parseHex(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// toTCell converts a colorful color to a tcell RGB color.
func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
