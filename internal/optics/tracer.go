package optics

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Defaults used when Options fields are left zero.
const (
	DefaultMaxBounces = 10
	DefaultRayLength  = 1000.0
)

// Outcome describes how a trace ended.
type Outcome int

const (
	ExitedBounds Outcome = iota
	HitTarget
	BlockedByObstacle
	MaxBouncesReached
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case ExitedBounds:
		return "exited"
	case HitTarget:
		return "hit-target"
	case BlockedByObstacle:
		return "blocked"
	case MaxBouncesReached:
		return "max-bounces"
	default:
		return "unknown"
	}
}

// HitKind tags what a ray segment ran into.
type HitKind int

const (
	KindNone HitKind = iota
	KindTarget
	KindMirror
	KindObstacle
)

// Hit is the resolved collision for one ray segment.
// Index points into Scene.Mirrors or Scene.Obstacles depending on Kind.
type Hit struct {
	Kind     HitKind
	Index    int
	Point    Point
	Distance float64
}

// closer reports whether h should replace the current best candidate.
// Strict comparison keeps the earliest candidate on exact ties.
func (h Hit) closer(best Hit) bool {
	return best.Kind == KindNone || h.Distance < best.Distance
}

// Options bounds a trace.
type Options struct {
	MaxBounces int     // Iteration budget (default 10)
	RayLength  float64 // Length of the forward segment and of the exit leg (default 1000)
}

// DefaultOptions returns the standard trace bounds.
func DefaultOptions() Options {
	return Options{
		MaxBounces: DefaultMaxBounces,
		RayLength:  DefaultRayLength,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxBounces <= 0 {
		o.MaxBounces = DefaultMaxBounces
	}
	if o.RayLength <= 0 {
		o.RayLength = DefaultRayLength
	}
	return o
}

// Result is the path a ray took through the scene.
type Result struct {
	Path    []Point // Origin first, terminus last
	Outcome Outcome
	Hit     Hit // Target or obstacle that ended the ray; KindNone for ExitedBounds and MaxBouncesReached
	Bounces int // Number of mirror reflections along Path
}

// Trace follows the source ray through the scene for up to opts.MaxBounces
// iterations. Each iteration tests the target first, then takes the nearest
// obstacle edge or mirror. The scene is never modified.
func Trace(scene Scene, opts Options) Result {
	opts = opts.withDefaults()

	current := scene.Source.Origin
	angle := scene.Source.Angle
	path := make([]Point, 1, opts.MaxBounces+2)
	path[0] = current
	lastMirror := -1
	bounces := 0

	for i := 0; i < opts.MaxBounces; i++ {
		dir := direction(angle)
		rayEnd := r2.Add(current, r2.Scale(opts.RayLength, dir))

		if scene.Target.Active && SegmentCircleIntersection(current, rayEnd, scene.Target.Position, scene.Target.Radius) {
			path = append(path, scene.Target.Position)
			return Result{
				Path:    path,
				Outcome: HitTarget,
				Hit: Hit{
					Kind:     KindTarget,
					Point:    scene.Target.Position,
					Distance: r2.Norm(r2.Sub(scene.Target.Position, current)),
				},
				Bounces: bounces,
			}
		}

		best := nearestObstacle(scene.Obstacles, current, rayEnd)
		if m := nearestMirror(scene.Mirrors, current, dir, lastMirror); m.Kind != KindNone && m.closer(best) {
			best = m
		}

		switch best.Kind {
		case KindObstacle:
			path = append(path, best.Point)
			return Result{Path: path, Outcome: BlockedByObstacle, Hit: best, Bounces: bounces}

		case KindMirror:
			path = append(path, best.Point)
			reflected := Reflect(dir, scene.Mirrors[best.Index].Angle)
			angle = math.Atan2(reflected.Y, reflected.X)
			current = best.Point
			lastMirror = best.Index
			bounces++

		default:
			path = append(path, rayEnd)
			return Result{Path: path, Outcome: ExitedBounds, Bounces: bounces}
		}
	}

	return Result{Path: path, Outcome: MaxBouncesReached, Bounces: bounces}
}

// nearestObstacle returns the closest obstacle edge crossing on the ray
// segment, or a KindNone value.
func nearestObstacle(obstacles []Obstacle, from, to Point) Hit {
	var best Hit
	for i, o := range obstacles {
		for _, edge := range o.Edges() {
			p, ok := SegmentIntersection(from, to, edge[0], edge[1])
			if !ok {
				continue
			}
			h := Hit{Kind: KindObstacle, Index: i, Point: p, Distance: r2.Norm(r2.Sub(p, from))}
			if h.closer(best) {
				best = h
			}
		}
	}
	return best
}

// nearestMirror returns the closest mirror along the ray. The mirror the ray
// is leaving (skip) is excluded so it cannot be hit again at distance zero.
func nearestMirror(mirrors []Mirror, origin, dir Point, skip int) Hit {
	var best Hit
	for i, m := range mirrors {
		if i == skip {
			continue
		}
		t, ok := RayMirrorIntersection(origin, dir, m)
		if !ok {
			continue
		}
		h := Hit{Kind: KindMirror, Index: i, Point: r2.Add(origin, r2.Scale(t, dir)), Distance: t}
		if h.closer(best) {
			best = h
		}
	}
	return best
}
