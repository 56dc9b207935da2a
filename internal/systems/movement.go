package systems

import (
	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
)

// MoveResult describes what a movement intent ran into.
// Exactly one of Merchant/Monster/HasMoved/Blocked applies, resolved in
// that priority order.
type MoveResult struct {
	NewPos   domain.Position
	Merchant bool            // bumped the shopkeeper: open the shop, no turn cost
	Monster  *domain.Monster // bumped a live monster: attack it
	HasMoved bool            // target tile is walkable
	Blocked  bool            // wall or out of bounds: silent no-op
}

// ResolveMove computes the outcome of moving from a position by (dx, dy).
// It never mutates the level or the mover; callers apply the result.
func ResolveMove(l *domain.Level, from domain.Position, dx, dy int) MoveResult {
	target := from.Shift(dx, dy)
	res := MoveResult{NewPos: target}

	if l.Merchant != nil && l.Merchant.Pos == target {
		res.Merchant = true
		return res
	}
	if m := l.MonsterAt(target.X, target.Y); m != nil {
		res.Monster = m
		return res
	}
	if l.IsWalkable(target.X, target.Y) {
		res.HasMoved = true
		return res
	}
	res.Blocked = true
	return res
}
