package mirror

import "math"

// Snapshot contains the game state used for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick       uint64
	Mode       int // 0=Campaign, 1=Random
	LevelID    string
	LevelIndex int
	Stage      int
	State      string
	Score      int
	Budget     int
	Selected   int
	CursorX    float64
	CursorY    float64

	// Each mirror is 3 floats: X, Y, Angle
	MirrorData []float64

	// Each obstacle is 4 floats: X, Y, W, H
	ObstacleData []float64

	TargetPhase int
	TargetFrame int
	Outcome     int
	Bounces     int
	PathLen     int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	mirrors := make([]float64, 0, len(g.mirrors)*3)
	for _, m := range g.mirrors {
		mirrors = append(mirrors, m.Position.X, m.Position.Y, m.Angle)
	}
	obstacles := make([]float64, 0, len(g.level.Obstacles)*4)
	for _, o := range g.level.Obstacles {
		obstacles = append(obstacles, o.X, o.Y, o.W, o.H)
	}

	return Snapshot{
		Tick:         uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Mode:         int(g.mode),
		LevelID:      g.level.ID,
		LevelIndex:   g.levelIndex,
		Stage:        g.stage,
		State:        g.state,
		Score:        g.score,
		Budget:       g.budget,
		Selected:     g.selected,
		CursorX:      g.cursor.X,
		CursorY:      g.cursor.Y,
		MirrorData:   mirrors,
		ObstacleData: obstacles,
		TargetPhase:  int(g.target.phase),
		TargetFrame:  g.target.frame,
		Outcome:      int(g.trace.Outcome),
		Bounces:      g.trace.Bounces,
		PathLen:      len(g.trace.Path),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Mode)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Stage)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Budget)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Selected+1) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CursorX)
	h = h*31 + math.Float64bits(snap.CursorY)
	for _, c := range snap.LevelID + snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.MirrorData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.TargetPhase) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TargetFrame) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Outcome)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Bounces)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PathLen)     //#nosec G115 -- hash computation
	return h
}
