package optics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Determinant thresholds below which two lines count as parallel.
const (
	segmentEpsilon = 1e-8
	mirrorEpsilon  = 1e-4
)

// SegmentIntersection returns the point where segment p1-p2 crosses p3-p4.
// Parallel or degenerate pairs never intersect.
func SegmentIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	r := r2.Sub(p2, p1)
	s := r2.Sub(p4, p3)
	denom := r2.Cross(r, s)
	if math.Abs(denom) < segmentEpsilon {
		return Point{}, false
	}

	w := r2.Sub(p1, p3)
	ua := r2.Cross(s, w) / denom
	ub := r2.Cross(r, w) / denom
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Point{}, false
	}
	return r2.Add(p1, r2.Scale(ua, r)), true
}

// RayMirrorIntersection returns the distance along the unit direction dir
// from origin at which the ray meets the mirror. The ray is a half-line
// (t >= 0); the mirror is its finite segment.
func RayMirrorIntersection(origin, dir Point, m Mirror) (float64, bool) {
	a, b := m.Endpoints()
	seg := r2.Sub(b, a)
	denom := r2.Cross(dir, seg)
	if math.Abs(denom) < mirrorEpsilon {
		return 0, false
	}

	w := r2.Sub(origin, a)
	t1 := r2.Cross(seg, w) / denom
	t2 := r2.Cross(dir, w) / denom
	if t1 < 0 || t2 < 0 || t2 > 1 {
		return 0, false
	}
	return t1, true
}

// SegmentCircleIntersection reports whether segment a-b touches the circle.
// The line is parametrised over [0,1]; a hit needs one root of the
// line-circle quadratic inside that interval.
func SegmentCircleIntersection(a, b, center Point, radius float64) bool {
	d := r2.Sub(b, a)
	f := r2.Sub(a, center)

	qa := r2.Dot(d, d)
	if qa == 0 {
		return false
	}
	qb := 2 * r2.Dot(f, d)
	qc := r2.Dot(f, f) - radius*radius

	disc := qb*qb - 4*qa*qc
	if disc < 0 {
		return false
	}

	sq := math.Sqrt(disc)
	t1 := (-qb - sq) / (2 * qa)
	t2 := (-qb + sq) / (2 * qa)
	return (t1 >= 0 && t1 <= 1) || (t2 >= 0 && t2 <= 1)
}

// Reflect mirrors the incident direction off a surface oriented at
// mirrorDeg degrees. The normal is flipped to face the incoming ray before
// applying R = I - 2(I·N)N.
func Reflect(incident Point, mirrorDeg float64) Point {
	theta := mirrorDeg * math.Pi / 180
	normal := Point{X: -math.Sin(theta), Y: math.Cos(theta)}
	if r2.Dot(incident, normal) > 0 {
		normal = r2.Scale(-1, normal)
	}
	return r2.Sub(incident, r2.Scale(2*r2.Dot(incident, normal), normal))
}
