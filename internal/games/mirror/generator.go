package mirror

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/light-arcade/internal/config"
	"github.com/vovakirdan/light-arcade/internal/optics"
)

const (
	// Obstacle counts in the config are tuned for a field of this area.
	referenceArea = 800 * 600

	sourceInset = 30 // Source distance from the left edge
	targetInset = 50 // Target distance from the right edge

	attemptsPerObstacle = 50
)

// RandomObstacleCount draws an obstacle count in [min, max], scaled by the
// field area relative to the reference field.
func RandomObstacleCount(rng *rand.Rand, r config.MirrorRandom, width, height float64) int {
	lo, hi := r.MinObstacles, r.MaxObstacles
	if hi < lo {
		hi = lo
	}
	n := lo + rng.Intn(hi-lo+1)
	scaled := int(math.Round(float64(n) * width * height / referenceArea))
	return max(0, scaled)
}

// RandomLevel builds a level with the light on the left edge, the target on
// the right edge and count square obstacles scattered over a grid of cells.
// Obstacles closer than r.Clearance to the source or target are redrawn.
func RandomLevel(rng *rand.Rand, width, height float64, r config.MirrorRandom, count int, targetRadius float64) Level {
	maxAngle := r.MaxAngle * math.Pi / 180
	lvl := Level{
		ID:     "random",
		Name:   "Random",
		Width:  width,
		Height: height,
		Source: optics.Ray{
			Origin: optics.Pt(sourceInset, height/2),
			Angle:  rng.Float64()*2*maxAngle - maxAngle,
		},
		Target: optics.Target{
			Position: optics.Pt(width-targetInset, height/2),
			Radius:   targetRadius,
		},
	}

	cols, rows := max(1, r.GridCols), max(1, r.GridRows)
	cellW := width / float64(cols)
	cellH := height / float64(rows)
	size := r.ObstacleSize

	for attempts := 0; len(lvl.Obstacles) < count && attempts < count*attemptsPerObstacle; attempts++ {
		gx := rng.Intn(cols)
		gy := rng.Intn(rows)
		o := optics.Obstacle{
			X: float64(gx)*cellW + rng.Float64()*math.Max(0, cellW-size),
			Y: float64(gy)*cellH + rng.Float64()*math.Max(0, cellH-size),
			W: size,
			H: size,
		}

		if distanceToRect(lvl.Source.Origin, o) < r.Clearance ||
			distanceToRect(lvl.Target.Position, o) < r.Clearance {
			continue
		}
		lvl.Obstacles = append(lvl.Obstacles, o)
	}

	return lvl
}

// distanceToRect is the distance from p to the closest point of o.
func distanceToRect(p optics.Point, o optics.Obstacle) float64 {
	dx := math.Max(0, math.Max(o.X-p.X, p.X-(o.X+o.W)))
	dy := math.Max(0, math.Max(o.Y-p.Y, p.Y-(o.Y+o.H)))
	return math.Hypot(dx, dy)
}
