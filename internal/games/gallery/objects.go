package gallery

import (
	"math"
	"math/rand"
)

// Terminal cells are about twice as tall as they are wide; vertical
// motion is halved so shells and targets keep their on-screen angles.
const cellAspect = 2.0

// Target sizes in cells
const (
	TargetWidth  = 3
	TargetHeight = 1
)

// Cannon is the turret at the bottom of the screen.
type Cannon struct {
	X, Y  float64
	Angle float64 // Degrees from vertical, negative to the left
}

// Direction returns the unit aim vector in cell space.
func (c Cannon) Direction() (float64, float64) {
	rad := c.Angle * math.Pi / 180
	return math.Sin(rad), -math.Cos(rad) / cellAspect
}

// Muzzle returns the tip of a barrel of the given length.
func (c Cannon) Muzzle(length float64) (float64, float64) {
	dx, dy := c.Direction()
	return c.X + dx*length, c.Y + dy*length
}

// Shell is a fired projectile.
type Shell struct {
	X, Y   float64
	VX, VY float64
}

// Target is a flying saucer. Hit targets fall until they fade out.
type Target struct {
	X, Y    float64 // Center
	VX, VY  float64
	Falling bool
	Fade    int // Ticks left while falling
}

// Contains reports whether the point lies inside the target's box.
func (t Target) Contains(x, y float64) bool {
	return math.Abs(x-t.X) < TargetWidth/2.0 && math.Abs(y-t.Y) < TargetHeight/2.0+0.25
}

// Explosion is a short-lived hit marker.
type Explosion struct {
	X, Y  int
	Ticks int
}

// spawnTargets places n targets in the upper half of the field with
// random velocities biased upward by the level.
func spawnTargets(rng *rand.Rand, n int, width, top, mid int, speed, boost float64) []Target {
	targets := make([]Target, 0, n)
	span := float64(max(1, width-2*TargetWidth))
	rows := float64(max(1, mid-top-1))
	for range n {
		targets = append(targets, Target{
			X:  TargetWidth + rng.Float64()*span,
			Y:  float64(top+1) + rng.Float64()*rows,
			VX: (rng.Float64()-0.5)*2*speed + boost,
			VY: ((rng.Float64()-0.5)*2*speed + boost) / cellAspect,
		})
	}
	return targets
}
