package systems

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/logger"
)

// DefaultFOVRadius is the standard sight radius in tiles.
const DefaultFOVRadius = 6

// ComputeFOV recomputes the level's visible grid from the viewer's
// position and folds the result into the revealed grid.
//
// The field is produced by casting 360 rays at one-degree increments and
// stepping each ray a unit length at a time, rounding the continuous
// position to the nearest tile. A ray stops right after marking a wall
// (walls are visible but never seen through) or on leaving the grid.
// The angular sampling leaves gaps at distance; that imprecision is part
// of the game's look.
func ComputeFOV(l *domain.Level, px, py, radius int) {
	fovLogger := logger.Log.WithFields(logrus.Fields{
		"component": "fov_system",
		"viewer_x":  px,
		"viewer_y":  py,
		"radius":    radius,
	})

	for y := range l.Visible {
		for x := range l.Visible[y] {
			l.Visible[y][x] = false
		}
	}

	if radius <= 0 {
		fovLogger.Warn("FOV skipped for blind viewer (radius <= 0)")
		return
	}

	marked := 0
	for deg := 0; deg < 360; deg++ {
		angle := float64(deg) * math.Pi / 180
		dx := math.Cos(angle)
		dy := math.Sin(angle)

		x, y := float64(px), float64(py)
		for step := 0; step < radius; step++ {
			ix := int(math.Round(x))
			iy := int(math.Round(y))
			if !l.InBounds(ix, iy) {
				break
			}
			if !l.Visible[iy][ix] {
				marked++
			}
			l.Visible[iy][ix] = true
			l.Revealed[iy][ix] = true
			if l.Tiles[iy][ix] == domain.TileWall {
				break
			}
			x += dx
			y += dy
		}
	}

	fovLogger.WithField("visible_tiles", marked).Debug("FOV calculation complete")
}
