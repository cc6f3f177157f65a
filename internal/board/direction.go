// Package board provides loop-puzzle grid generation, mirroring, shuffling,
// and open-connection analysis.
package board

// Direction is one of the four connector directions, in clockwise order.
// It doubles as a tile orientation: the number of clockwise quarter-turns
// away from the archetype's canonical pose.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// Directions lists all four directions in clockwise order for iteration.
func Directions() []Direction {
	return []Direction{Top, Right, Bottom, Left}
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Next returns the direction one clockwise quarter-turn away.
// Four applications return the original direction.
func (d Direction) Next() Direction {
	return (d + 1) % 4
}

// Opposite returns the facing direction (Top↔Bottom, Right↔Left).
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the column and row offsets of the neighboring cell in this
// direction. Row indices grow downward.
func (d Direction) Delta() (dcol, drow int) {
	switch d {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}
