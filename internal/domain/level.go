package domain

// Rect is a room rectangle used during generation and connectivity.
type Rect struct {
	X, Y, W, H int
}

// Center returns the middle tile of the rectangle.
func (r Rect) Center() Position {
	return Position{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether two rooms touch when padded by one tile.
// Rooms sharing even a padded border are rejected by the generator so
// that every room keeps a solid wall ring.
func (r Rect) Overlaps(other Rect) bool {
	return !(r.X+r.W+1 < other.X || other.X+other.W+1 < r.X ||
		r.Y+r.H+1 < other.Y || other.Y+other.H+1 < r.Y)
}

// Level is one generated dungeon floor. It is created per descent and
// discarded on the next one; there is no level re-entry.
type Level struct {
	Width  int
	Height int
	Depth  int

	Tiles [][]TileKind

	// Revealed marks tiles ever seen (fog-of-war memory),
	// Visible marks tiles in line of sight this turn.
	Revealed [][]bool
	Visible  [][]bool

	Rooms    []Rect
	Monsters []*Monster
	Items    []*Item
	Merchant *Merchant
	Stairs   Position
}

// NewLevel allocates a level filled with solid wall and unseen grids.
func NewLevel(width, height, depth int) *Level {
	l := &Level{
		Width:  width,
		Height: height,
		Depth:  depth,
	}
	l.Tiles = make([][]TileKind, height)
	l.Revealed = make([][]bool, height)
	l.Visible = make([][]bool, height)
	for y := 0; y < height; y++ {
		l.Tiles[y] = make([]TileKind, width)
		l.Revealed[y] = make([]bool, width)
		l.Visible[y] = make([]bool, width)
	}
	return l
}

// InBounds reports whether (x, y) lies on the grid.
func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// IsWalkable reports whether (x, y) is a tile an entity may stand on.
// Out-of-bounds counts as blocked.
func (l *Level) IsWalkable(x, y int) bool {
	return l.InBounds(x, y) && l.Tiles[y][x].Walkable()
}

// MonsterAt returns the live monster on (x, y), or nil.
func (l *Level) MonsterAt(x, y int) *Monster {
	for _, m := range l.Monsters {
		if m.Pos.X == x && m.Pos.Y == y {
			return m
		}
	}
	return nil
}

// ItemAt returns the floor item on (x, y), or nil.
func (l *Level) ItemAt(x, y int) *Item {
	for _, it := range l.Items {
		if it.Pos.X == x && it.Pos.Y == y {
			return it
		}
	}
	return nil
}

// RemoveMonster deletes a monster from the level (death).
func (l *Level) RemoveMonster(m *Monster) {
	for i, other := range l.Monsters {
		if other.ID == m.ID {
			l.Monsters = append(l.Monsters[:i], l.Monsters[i+1:]...)
			return
		}
	}
}

// RemoveItem deletes a floor item from the level (pickup).
func (l *Level) RemoveItem(it *Item) {
	for i, other := range l.Items {
		if other.ID == it.ID {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return
		}
	}
}

// RevealAll marks every tile as explored without touching visibility.
// Used by the mapping scroll.
func (l *Level) RevealAll() {
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			l.Revealed[y][x] = true
		}
	}
}
