package dungeon

import (
	"math/rand"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
)

// Generation constants.
const (
	// MaxAttempts bounds room placement so that generation always
	// terminates, even on pathological map sizes.
	MaxAttempts = 200

	MinRooms = 5
	MaxRooms = 9

	MinRoomW = 5
	MaxRoomW = 12
	MinRoomH = 4
	MaxRoomH = 8
)

// Generate builds a dungeon level for the given depth from the catalog
// tables, using only the injected rng. Every floor tile is reachable
// from the first room by construction: each accepted room is carved and
// immediately connected to the previous one with an L-shaped corridor.
func Generate(width, height, depth int, cat *domain.Catalog, rng *rand.Rand) *domain.Level {
	l := domain.NewLevel(width, height, depth)

	target := randRange(rng, MinRooms, MaxRooms)
	for attempt := 0; attempt < MaxAttempts && len(l.Rooms) < target; attempt++ {
		rw := randRange(rng, MinRoomW, MaxRoomW)
		rh := randRange(rng, MinRoomH, MaxRoomH)

		// Keep a one-tile border inside the grid. Maps too small for
		// the rolled size just burn the attempt.
		if width-rw-2 < 1 || height-rh-2 < 1 {
			continue
		}
		room := domain.Rect{
			X: randRange(rng, 1, width-rw-2),
			Y: randRange(rng, 1, height-rh-2),
			W: rw,
			H: rh,
		}

		overlaps := false
		for _, other := range l.Rooms {
			if room.Overlaps(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(l, room)
		if len(l.Rooms) > 0 {
			connect(l, l.Rooms[len(l.Rooms)-1], room)
		}
		l.Rooms = append(l.Rooms, room)
	}

	if len(l.Rooms) == 0 {
		// Degenerate map: no room ever fit. Leave the solid-wall level
		// as is; callers own the (unplayable but valid) result.
		return l
	}

	// Stairs down sit in the center of the last accepted room.
	l.Stairs = l.Rooms[len(l.Rooms)-1].Center()
	l.Tiles[l.Stairs.Y][l.Stairs.X] = domain.TileStairs

	placeMonsters(l, cat, rng)
	placeItems(l, cat, rng)
	placeMerchant(l, cat, rng)

	return l
}

// carveRoom floors the full room rectangle.
func carveRoom(l *domain.Level, room domain.Rect) {
	for y := room.Y; y < room.Y+room.H; y++ {
		for x := room.X; x < room.X+room.W; x++ {
			l.Tiles[y][x] = domain.TileFloor
		}
	}
}

// connect carves an L-shaped corridor between two room centers:
// horizontally to the target column first, then vertically.
func connect(l *domain.Level, from, to domain.Rect) {
	a := from.Center()
	b := to.Center()
	carveHCorridor(l, a.X, b.X, a.Y)
	carveVCorridor(l, a.Y, b.Y, b.X)
}

func carveHCorridor(l *domain.Level, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		l.Tiles[y][x] = domain.TileFloor
	}
}

func carveVCorridor(l *domain.Level, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		l.Tiles[y][x] = domain.TileFloor
	}
}

// placeMonsters populates every room except the first (the player
// spawn room stays safe). Count and tier scale with depth.
func placeMonsters(l *domain.Level, cat *domain.Catalog, rng *rand.Rand) {
	for _, room := range l.Rooms[1:] {
		n := randRange(rng, 0, 2+l.Depth/2)
		for i := 0; i < n; i++ {
			pos := interiorPos(room, rng)
			// Rolls landing on stairs or corridor-free spots are skipped.
			if l.Tiles[pos.Y][pos.X] != domain.TileFloor {
				continue
			}
			tier := min(rng.Intn(l.Depth+1), cat.DragonTier())
			l.Monsters = append(l.Monsters, spawnMonster(cat, tier, l.Depth, pos))
		}
	}
}

// placeItems gives each room an independent 50% chance of one item.
func placeItems(l *domain.Level, cat *domain.Catalog, rng *rand.Rand) {
	for _, room := range l.Rooms {
		if rng.Float64() >= 0.5 {
			continue
		}
		pos := interiorPos(room, rng)
		if l.Tiles[pos.Y][pos.X] != domain.TileFloor {
			continue
		}
		l.Items = append(l.Items, rollItem(cat, l.Depth, pos, rng))
	}
}

// placeMerchant puts a shopkeeper in a random interior room (never the
// first or last) when the level has more than two rooms.
func placeMerchant(l *domain.Level, cat *domain.Catalog, rng *rand.Rand) {
	if len(l.Rooms) <= 2 {
		return
	}
	interior := l.Rooms[1 : len(l.Rooms)-1]
	room := interior[rng.Intn(len(interior))]
	l.Merchant = &domain.Merchant{
		Pos:   room.Center(),
		Stock: merchantStock(cat, l.Depth, rng),
	}
}

// interiorPos rolls a position strictly inside the room walls.
func interiorPos(room domain.Rect, rng *rand.Rand) domain.Position {
	return domain.Position{
		X: randRange(rng, room.X+1, room.X+room.W-2),
		Y: randRange(rng, room.Y+1, room.Y+room.H-2),
	}
}

// randRange returns a uniform int in [lo, hi] inclusive.
func randRange(rng *rand.Rand, lo, hi int) int {
	return rng.Intn(hi-lo+1) + lo
}
