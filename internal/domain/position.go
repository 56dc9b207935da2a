package domain

// Position is a tile coordinate on a dungeon level.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift returns a new Position offset by (dx, dy) without mutating the receiver.
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanTo returns the Manhattan distance to other.
// Monster AI ranges (melee, pursuit) are defined in these terms.
func (p Position) ManhattanTo(other Position) int {
	return abs(p.X-other.X) + abs(p.Y-other.Y)
}

// DirectionTo returns the unit step (sx, sy) toward other, axis-wise.
func (p Position) DirectionTo(other Position) (int, int) {
	return sign(other.X - p.X), sign(other.Y - p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
