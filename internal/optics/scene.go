// Package optics traces a light ray through a flat scene of mirrors and
// opaque rectangles. It has no dependencies on the platform or on any game:
// callers hand in a Scene by value and get back a polyline and an outcome.
//
// Coordinates are canvas-style: x grows to the right, y grows downward, and
// angles are measured from +x toward +y.
package optics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position or direction in canvas space.
type Point = r2.Vec

// Pt builds a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Ray is the light's current segment: an origin and a direction angle.
type Ray struct {
	Origin Point
	Angle  float64 // Radians
}

// Direction returns the unit vector the ray travels along.
func (r Ray) Direction() Point {
	return direction(r.Angle)
}

// Mirror is a finite reflective segment centered at Position.
type Mirror struct {
	Position Point
	Angle    float64 // Degrees, relative to +x
	Length   float64
}

// Radians returns the mirror orientation in radians.
func (m Mirror) Radians() float64 {
	return m.Angle * math.Pi / 180
}

// Endpoints returns the two ends of the mirror segment,
// Position ± (Length/2)·(cos, sin).
func (m Mirror) Endpoints() (Point, Point) {
	half := r2.Scale(m.Length/2, direction(m.Radians()))
	return r2.Sub(m.Position, half), r2.Add(m.Position, half)
}

// Obstacle is an opaque axis-aligned rectangle.
type Obstacle struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Edges returns the rectangle outline as four segments in the order
// top, right, bottom, left.
func (o Obstacle) Edges() [4][2]Point {
	tl := Pt(o.X, o.Y)
	tr := Pt(o.X+o.W, o.Y)
	br := Pt(o.X+o.W, o.Y+o.H)
	bl := Pt(o.X, o.Y+o.H)
	return [4][2]Point{
		{tl, tr},
		{tr, br},
		{br, bl},
		{bl, tl},
	}
}

// Contains reports whether p lies inside or on the rectangle.
func (o Obstacle) Contains(p Point) bool {
	return p.X >= o.X && p.X <= o.X+o.W && p.Y >= o.Y && p.Y <= o.Y+o.H
}

// Target is the circular region the light has to reach.
// Inactive targets are ignored while tracing (e.g. during animations).
type Target struct {
	Position Point
	Radius   float64
	Active   bool
}

// Scene is a read-only snapshot of everything the ray can interact with.
type Scene struct {
	Source    Ray
	Mirrors   []Mirror
	Obstacles []Obstacle
	Target    Target
}

func direction(angle float64) Point {
	return Point{X: math.Cos(angle), Y: math.Sin(angle)}
}
