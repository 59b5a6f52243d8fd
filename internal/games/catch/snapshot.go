package catch

import "math"

// Snapshot contains the game state used for determinism checks.
type Snapshot struct {
	Tick        uint64
	PlateX      float64
	FrozenTicks int
	Caught      int
	Score       int
	State       string

	// Each item is 4 values: X, Y, Speed, Kind
	ItemData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	items := g.items.Items()
	data := make([]float64, 0, len(items)*4)
	for _, it := range items {
		data = append(data, it.X, it.Y, it.Speed, float64(it.Kind))
	}

	return Snapshot{
		Tick:        uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PlateX:      g.plateX,
		FrozenTicks: g.frozenTicks,
		Caught:      g.caught,
		Score:       g.score,
		State:       g.state,
		ItemData:    data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + math.Float64bits(snap.PlateX)
	h = h*31 + uint64(snap.FrozenTicks) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Caught)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)       //#nosec G115 -- hash computation
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ItemData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
