package mirror

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/light-arcade/internal/config"
	"github.com/vovakirdan/light-arcade/internal/optics"
)

func TestRandomLevelDeterministic(t *testing.T) {
	cfg := config.DefaultMirrorConfig().Random

	a := RandomLevel(rand.New(rand.NewSource(99)), 800, 600, cfg, 20, 20)
	b := RandomLevel(rand.New(rand.NewSource(99)), 800, 600, cfg, 20, 20)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should generate the same level")
	}

	c := RandomLevel(rand.New(rand.NewSource(100)), 800, 600, cfg, 20, 20)
	if reflect.DeepEqual(a, c) {
		t.Error("different seeds should generate different levels")
	}
}

func TestRandomLevelLayout(t *testing.T) {
	cfg := config.DefaultMirrorConfig().Random

	for seed := int64(1); seed <= 20; seed++ {
		lvl := RandomLevel(rand.New(rand.NewSource(seed)), 800, 600, cfg, 25, 20)

		if err := lvl.Validate(); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(lvl.Obstacles) > 25 {
			t.Errorf("seed %d: %d obstacles, asked for 25", seed, len(lvl.Obstacles))
		}

		maxAngle := cfg.MaxAngle * math.Pi / 180
		if lvl.Source.Angle < -maxAngle || lvl.Source.Angle > maxAngle {
			t.Errorf("seed %d: source angle %f outside ±%f", seed, lvl.Source.Angle, maxAngle)
		}

		for i, o := range lvl.Obstacles {
			if o.X < 0 || o.Y < 0 || o.X+o.W > lvl.Width || o.Y+o.H > lvl.Height {
				t.Errorf("seed %d: obstacle %d %+v leaves the field", seed, i, o)
			}
			if d := distanceToRect(lvl.Source.Origin, o); d < cfg.Clearance {
				t.Errorf("seed %d: obstacle %d is %f from the source", seed, i, d)
			}
			if d := distanceToRect(lvl.Target.Position, o); d < cfg.Clearance {
				t.Errorf("seed %d: obstacle %d is %f from the target", seed, i, d)
			}
		}
	}
}

func TestRandomObstacleCount(t *testing.T) {
	cfg := config.DefaultMirrorConfig().Random
	rng := rand.New(rand.NewSource(5))

	for range 100 {
		n := RandomObstacleCount(rng, cfg, 800, 600)
		if n < cfg.MinObstacles || n > cfg.MaxObstacles {
			t.Fatalf("count %d outside [%d, %d] on the reference field", n, cfg.MinObstacles, cfg.MaxObstacles)
		}
	}

	if n := RandomObstacleCount(rng, cfg, 400, 300); n > cfg.MaxObstacles/4+1 {
		t.Errorf("quarter-size field got %d obstacles", n)
	}
}

func TestDistanceToRect(t *testing.T) {
	o := optics.Obstacle{X: 10, Y: 10, W: 90, H: 90}

	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"inside", 50, 50, 0},
		{"left", 0, 50, 10},
		{"below", 50, 130, 30},
		{"corner", 7, 6, 5},
	}
	for _, tc := range tests {
		if got := distanceToRect(optics.Pt(tc.x, tc.y), o); got != tc.want {
			t.Errorf("%s: distance = %f, expected %f", tc.name, got, tc.want)
		}
	}
}
