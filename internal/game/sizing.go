package game

import "math/rand"

// Mode selects how board dimensions are derived from the viewport.
type Mode int

const (
	// ModeNormal fits a moderate board to the terminal.
	ModeNormal Mode = iota
	// ModeDense packs roughly twice as many tiles into the same space.
	ModeDense
	// ModeCustom uses the configured rows/cols as-is.
	ModeCustom
)

// Board dimension clamps for the viewport-derived modes. Custom boards are
// not clamped.
const (
	minRows = 2
	maxRows = 9
	minCols = 2
	maxCols = 18
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeDense:
		return "dense"
	case ModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name to a Mode; unknown names fall back to
// normal.
func ParseMode(s string) Mode {
	switch s {
	case "dense":
		return ModeDense
	case "custom":
		return ModeCustom
	default:
		return ModeNormal
	}
}

// RandomMode picks normal or dense with weighted probability, favoring
// normal. Used when no mode is configured.
func RandomMode(rng *rand.Rand) Mode {
	if rng.Intn(10) < 7 {
		return ModeNormal
	}
	return ModeDense
}

// BoardSize derives board dimensions from the terminal size for the given
// mode. One terminal cell renders one tile; the divisors leave breathing
// room around the board, with dense trading margin for tile count. Custom
// mode returns the configured dimensions, floored at 1×1.
func BoardSize(mode Mode, termWidth, termHeight int, cfg Config) (rows, cols int) {
	switch mode {
	case ModeCustom:
		return max(cfg.Rows, 1), max(cfg.Cols, 1)
	case ModeDense:
		rows = clamp(termHeight/3, minRows, maxRows)
		cols = clamp(termWidth/4, minCols, maxCols)
	default:
		rows = clamp(termHeight/5, minRows, maxRows)
		cols = clamp(termWidth/8, minCols, maxCols)
	}
	return rows, cols
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
