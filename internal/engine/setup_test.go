package engine

import (
	"os"
	"testing"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/internal/systems"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/api"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// newPlayingSession starts a run and then swaps the generated level for
// a small empty arena so tests control exactly what is on the floor.
// The player stands at (5,5); the stairs sit at (9,8).
func newPlayingSession() *Session {
	cfg := NewConfig()
	cfg.Seed = 1
	s := NewSession(cfg, domain.DefaultCatalog())
	s.Apply(api.Intent{Kind: api.IntentStart})

	l := domain.NewLevel(12, 10, 1)
	for y := 1; y < 9; y++ {
		for x := 1; x < 11; x++ {
			l.Tiles[y][x] = domain.TileFloor
		}
	}
	l.Stairs = domain.Position{X: 9, Y: 8}
	l.Tiles[8][9] = domain.TileStairs
	l.Rooms = []domain.Rect{{X: 1, Y: 1, W: 10, H: 8}}

	s.level = l
	s.player.Pos = domain.Position{X: 5, Y: 5}
	s.messages = nil
	systems.ComputeFOV(l, 5, 5, s.cfg.FOVRadius)
	return s
}

func lastMessage(s *Session) string {
	if len(s.messages) == 0 {
		return ""
	}
	return s.messages[len(s.messages)-1]
}
