package game

import (
	"os"
	"strconv"
)

// Config holds session configuration options, read from LOOPGRID_*
// environment variables.
type Config struct {
	// Seed for random number generation; 0 means a clock seed.
	Seed int64

	// Mode selects the sizing policy. HasMode distinguishes an explicit
	// mode from the weighted random pick.
	Mode    Mode
	HasMode bool

	// Rows and Cols apply in custom mode only.
	Rows int
	Cols int

	// Mirror flags request symmetric boards. They apply to the normal and
	// dense modes; custom boards are never mirrored.
	MirrorHorizontal bool
	MirrorVertical   bool

	// Theme is a theme ID; empty means a weighted random pick.
	Theme string
}

// ConfigFromEnv builds a Config from the environment. Missing or malformed
// values keep their zero defaults.
func ConfigFromEnv() Config {
	cfg := Config{
		Seed: envInt64("LOOPGRID_SEED"),
		Rows: int(envInt64("LOOPGRID_ROWS")),
		Cols: int(envInt64("LOOPGRID_COLS")),

		MirrorHorizontal: envBool("LOOPGRID_MIRROR_HORIZONTAL"),
		MirrorVertical:   envBool("LOOPGRID_MIRROR_VERTICAL"),

		Theme: os.Getenv("LOOPGRID_THEME"),
	}

	if mode := os.Getenv("LOOPGRID_MODE"); mode != "" {
		cfg.Mode = ParseMode(mode)
		cfg.HasMode = true
	}

	// Explicit dimensions imply custom mode.
	if !cfg.HasMode && cfg.Rows > 0 && cfg.Cols > 0 {
		cfg.Mode = ModeCustom
		cfg.HasMode = true
	}

	return cfg
}

func envInt64(key string) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return v
}
