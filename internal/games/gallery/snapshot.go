package gallery

import "math"

// Snapshot contains the game state used for determinism checks.
type Snapshot struct {
	Tick   uint64
	Angle  float64
	Level  int
	Shells int
	Score  int
	State  string

	// Shell is X, Y, VX, VY or empty when none is in flight
	ShellData []float64

	// Each target is 5 values: X, Y, VX, VY, Falling
	TargetData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	var shell []float64
	if s := g.shell; s != nil {
		shell = []float64{s.X, s.Y, s.VX, s.VY}
	}

	targets := make([]float64, 0, len(g.targets)*5)
	for _, t := range g.targets {
		falling := 0.0
		if t.Falling {
			falling = 1
		}
		targets = append(targets, t.X, t.Y, t.VX, t.VY, falling)
	}

	return Snapshot{
		Tick:       uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Angle:      g.cannon.Angle,
		Level:      g.level,
		Shells:     g.shells,
		Score:      g.score,
		State:      g.state,
		ShellData:  shell,
		TargetData: targets,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.Angle)
	h = h*31 + uint64(snap.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shells) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ShellData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.TargetData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
