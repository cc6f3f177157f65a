package puzzle

// Default board dimensions, used when options leave them zero.
const (
	DefaultRows = 6
	DefaultCols = 6

	// DefaultMaxAttempts bounds the regenerate-and-reshuffle loop that
	// rejects degenerate all-blank boards.
	DefaultMaxAttempts = 16
)

// Options configures puzzle creation.
type Options struct {
	Rows int // Board height in tiles
	Cols int // Board width in tiles

	// MirrorHorizontal reflects the right half of the generated board from
	// the left; MirrorVertical reflects the bottom half from the top. Both
	// are aesthetic variants and preserve solvability.
	MirrorHorizontal bool
	MirrorVertical   bool

	Seed        int64 // Seed for reproducible puzzles (0 = random)
	MaxAttempts int   // Attempt ceiling for rejected boards (0 = default)
}

// DefaultOptions returns options for a playable mid-sized board.
func DefaultOptions() Options {
	return Options{
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// normalized fills in zero values.
func (o Options) normalized() Options {
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	return o
}
