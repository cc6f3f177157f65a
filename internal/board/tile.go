package board

// Archetype is the fixed connector-pattern family of a tile.
type Archetype int

const (
	// Blank has no connectors at all.
	Blank Archetype = iota
	// Single has one connector (Top in the canonical pose).
	Single
	// Straight has two opposite connectors (Right and Left).
	Straight
	// Corner has two adjacent connectors (Bottom and Left).
	Corner
	// Tee has three connectors (all but Left).
	Tee
	// Cross has connectors in every direction.
	Cross
)

// Archetypes lists every archetype, used when enumerating placement candidates.
func Archetypes() []Archetype {
	return []Archetype{Blank, Single, Straight, Corner, Tee, Cross}
}

// String returns the archetype name.
func (a Archetype) String() string {
	switch a {
	case Blank:
		return "blank"
	case Single:
		return "single"
	case Straight:
		return "straight"
	case Corner:
		return "corner"
	case Tee:
		return "tee"
	case Cross:
		return "cross"
	default:
		return "unknown"
	}
}

// connectorMask is a set of directions packed into the low four bits,
// bit i meaning a connector at Direction(i).
type connectorMask uint8

const maskAll connectorMask = 0xF

// baseMask returns the archetype's connector set in its canonical pose.
func (a Archetype) baseMask() connectorMask {
	switch a {
	case Single:
		return 1 << Top
	case Straight:
		return 1<<Right | 1<<Left
	case Corner:
		return 1<<Bottom | 1<<Left
	case Tee:
		return 1<<Top | 1<<Right | 1<<Bottom
	case Cross:
		return maskAll
	default:
		return 0
	}
}

// rotated returns the mask turned clockwise by the given quarter-turns.
func (m connectorMask) rotated(steps Direction) connectorMask {
	s := uint(steps) % 4
	return (m<<s | m>>(4-s)) & maskAll
}

// has reports whether the mask contains a connector in the given direction.
func (m connectorMask) has(d Direction) bool {
	return m&(1<<d) != 0
}

// Tile is a single cell of the puzzle. Its archetype and position are fixed
// at creation; only the orientation changes, through Rotate.
type Tile struct {
	Archetype Archetype
	Col, Row  int

	orientation Direction
	rotations   int
}

// NewTile creates a tile at the given position with the given orientation.
func NewTile(archetype Archetype, col, row int, orientation Direction) *Tile {
	return &Tile{
		Archetype:   archetype,
		Col:         col,
		Row:         row,
		orientation: orientation,
	}
}

// Rotate turns the tile one quarter-turn clockwise, advancing its connector
// set with it.
func (t *Tile) Rotate() {
	t.orientation = t.orientation.Next()
	t.rotations++
}

// Orientation returns the tile's current orientation.
func (t *Tile) Orientation() Direction {
	return t.orientation
}

// Rotations returns how many times the tile has been rotated since creation.
// The count never decreases and never wraps, so a renderer can animate
// cumulative angles (rotations × 90°) without snapping backwards.
func (t *Tile) Rotations() int {
	return t.rotations
}

// HasConnector reports whether the tile currently exposes a connector in the
// given direction.
func (t *Tile) HasConnector(d Direction) bool {
	return t.mask().has(d)
}

// Connectors returns the tile's current connector directions in clockwise
// order.
func (t *Tile) Connectors() []Direction {
	m := t.mask()
	var out []Direction
	for _, d := range Directions() {
		if m.has(d) {
			out = append(out, d)
		}
	}
	return out
}

// mask derives the current connector set from the base set and orientation.
func (t *Tile) mask() connectorMask {
	return t.Archetype.baseMask().rotated(t.orientation)
}
