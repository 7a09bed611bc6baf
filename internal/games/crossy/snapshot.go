package crossy

// Snapshot captures the observable simulation state for determinism
// testing and replay comparison.
type Snapshot struct {
	Tick         int
	Col          int
	Row          int
	Score        int
	Alive        bool
	Cause        DeathCause
	Epoch        int
	PathCol      int
	GeneratedMax int
	LaneKinds    map[int]Kind // Kind of every currently materialized lane
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	kinds := make(map[int]Kind, len(g.world.lanes))
	for row, lane := range g.world.lanes {
		kinds[row] = lane.Kind
	}

	return Snapshot{
		Tick:         g.tickCount,
		Col:          g.col,
		Row:          g.row,
		Score:        g.score,
		Alive:        g.alive,
		Cause:        g.cause,
		Epoch:        g.world.epoch,
		PathCol:      g.world.pathCol,
		GeneratedMax: g.world.generatedMax,
		LaneKinds:    kinds,
	}
}
