package config

import (
	"math"
	"sort"

	lin "github.com/sgreben/piecewiselinear"

	"github.com/vovakirdan/light-arcade/internal/core"
)

// DifficultyManager calculates dynamic game parameters based on score, time
// or campaign stage.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
	curve        lin.Function
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.Clamp(cfg.InitialLevel, 0.0, 1.0),
		curve:        buildCurve(cfg.Progression.Curve),
	}
}

// buildCurve turns config knots into a piecewise-linear function.
// Fewer than two knots means a straight 0..1 ramp.
func buildCurve(points []CurvePoint) lin.Function {
	if len(points) < 2 {
		return lin.Function{X: []float64{0, 1}, Y: []float64{0, 1}}
	}

	sorted := make([]CurvePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Progress < sorted[j].Progress
	})

	f := lin.Function{
		X: make([]float64, len(sorted)),
		Y: make([]float64, len(sorted)),
	}
	for i, p := range sorted {
		f.X[i] = p.Progress
		f.Y[i] = core.Clamp(p.Level, 0.0, 1.0)
	}
	return f
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.Clamp(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// Stage-based progressions use LevelForStage instead.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	switch d.cfg.Progression.Type {
	case "score":
		return d.levelFor(score)
	case "time":
		return d.levelFor(ticks)
	default:
		return d.initialLevel
	}
}

// LevelForStage returns the difficulty for a zero-based campaign stage.
func (d *DifficultyManager) LevelForStage(stage int) float64 {
	if d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}
	return d.levelFor(stage)
}

func (d *DifficultyManager) levelFor(value int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	// Stay inside the curve's domain
	lo, hi := d.curve.X[0], d.curve.X[len(d.curve.X)-1]
	progress := core.Clamp(float64(value)/maxAt, lo, hi)
	offset := core.Clamp(d.curve.At(progress), 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + offset*(1.0-d.initialLevel)
}

// Speed returns base speed scaled by difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, level float64) float64 {
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the spawn interval in ticks, shortened with difficulty.
func (d *DifficultyManager) SpawnInterval(baseInterval int, level float64) int {
	reduction := int(level * float64(d.cfg.Scaling.SpawnReduction))
	result := baseInterval - reduction
	if result < 4 { // Minimum playable interval
		result = 4
	}
	return result
}

// ObstacleCount returns the random obstacle count raised with difficulty.
func (d *DifficultyManager) ObstacleCount(base int, level float64) int {
	return base + int(math.Round(level*float64(d.cfg.Scaling.ObstacleIncrease)))
}

// MirrorBudget returns the mirror budget reduced with difficulty, never below one.
func (d *DifficultyManager) MirrorBudget(base int, level float64) int {
	result := base - int(math.Floor(level*float64(d.cfg.Scaling.BudgetReduction)))
	if result < 1 {
		result = 1
	}
	return result
}
