package systems

import (
	"fmt"
	"math/rand"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
)

// AI ranges, in Manhattan distance.
const (
	MeleeRange   = 1
	PursuitRange = 8
)

// MonsterSweep runs one AI turn for every monster the player can
// currently see. Monsters outside the visibility grid do not act at all,
// so unseen rooms can be sneaked past.
//
// Adjacent monsters attack; monsters within pursuit range take one
// greedy step toward the player (x axis first, falling back to y when
// blocked, never pathing around obstacles); anything farther idles.
//
// Returns attack messages and whether the player died. A death aborts
// the remaining monster turns for this tick.
func MonsterSweep(l *domain.Level, p *domain.Player, rng *rand.Rand) ([]string, bool) {
	var msgs []string

	// Iterate over a stable copy; l.Monsters must not mutate under us.
	snapshot := append([]*domain.Monster(nil), l.Monsters...)
	for _, m := range snapshot {
		if !l.Visible[m.Pos.Y][m.Pos.X] {
			continue
		}

		dist := m.Pos.ManhattanTo(p.Pos)
		switch {
		case dist <= MeleeRange:
			out := MonsterAttack(m, p, rng)
			msgs = append(msgs, fmt.Sprintf("The %s hits you for %d!", m.Name, out.Damage))
			if out.Died {
				return msgs, true
			}
		case dist <= PursuitRange:
			pursue(l, m, p)
		}
	}
	return msgs, false
}

// pursue moves a monster one greedy step toward the player.
func pursue(l *domain.Level, m *domain.Monster, p *domain.Player) {
	dx, dy := m.Pos.DirectionTo(p.Pos)

	if dx != 0 && stepFree(l, m.Pos.X+dx, m.Pos.Y) {
		m.Pos.X += dx
		return
	}
	if dy != 0 && stepFree(l, m.Pos.X, m.Pos.Y+dy) {
		m.Pos.Y += dy
	}
}

// stepFree reports whether a monster may step onto (x, y).
func stepFree(l *domain.Level, x, y int) bool {
	return l.IsWalkable(x, y) && l.MonsterAt(x, y) == nil
}
