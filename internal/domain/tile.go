package domain

// TileKind enumerates everything a map cell can be.
type TileKind uint8

const (
	TileWall TileKind = iota
	TileFloor
	// TileDoor is reserved: the generator never places one yet,
	// but the renderer and walkability rules already understand it.
	TileDoor
	TileStairs
)

// Walkable reports whether an entity may stand on this kind of tile.
func (k TileKind) Walkable() bool {
	return k != TileWall
}

// Glyph returns the classic single-character representation of the tile.
func (k TileKind) Glyph() string {
	switch k {
	case TileWall:
		return "#"
	case TileFloor:
		return "."
	case TileDoor:
		return "+"
	case TileStairs:
		return ">"
	}
	return " "
}
