// Package game provides the main event loop and session state.
package game

// State represents the current session state.
type State int

const (
	// StatePlaying means the board still has open connections.
	StatePlaying State = iota
	// StateSolved means every connector is matched; the board flashes and
	// waits for a regenerate.
	StateSolved
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}
