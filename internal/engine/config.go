package engine

import (
	"time"

	"github.com/cosmo-mac/cosmos-dungeon/internal/systems"
)

// Config holds the engine launch parameters.
type Config struct {
	// Seed feeds the session RNG; generation, combat, and AI all draw
	// from the one stream it seeds.
	Seed int64

	MapWidth  int
	MapHeight int
	FOVRadius int
}

// NewConfig returns the default config with a random seed.
func NewConfig() Config {
	return Config{
		Seed:      time.Now().UnixNano(),
		MapWidth:  70,
		MapHeight: 22,
		FOVRadius: systems.DefaultFOVRadius,
	}
}
