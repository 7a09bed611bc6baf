package crossy

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
)

// Per-row seed mixing. Each lane draws from its own stream seeded purely
// from its row, a kind-disambiguating salt, and the world seed, so a
// regenerated lane reproduces identical content no matter the call order.
const (
	rowSeedStride = 1000003
	grassSeedSalt = 0x123456
	roadSeedSalt  = 0xABCDEF
)

const (
	// resetGap is how far the requested window's lower bound may regress
	// behind the furthest generated row before world history restarts.
	resetGap = 50
	// keepMargin is the extra rows retained on each side of the window.
	keepMargin = 2

	ungenerated = -1 << 30
)

// World generates and retains a rolling window of lanes around the player.
// Lanes are materialized lazily in strictly increasing row order, because
// the road-run scheduler and the wandering path column both depend on what
// came before. Rows below the safe-start band are always grass.
type World struct {
	cols  int
	lanes map[int]*Lane

	generatedMax  int
	nextRoadStart int
	roadRemaining int
	pathCol       int

	// rng drives scheduling and path-wiggle decisions only; lane content
	// comes from per-row seeds and is independent of this stream's phase.
	rng   *rand.Rand
	seed  int64
	epoch int

	cfg  *config.CrossyConfig
	diff *config.DifficultyManager
}

// NewWorld creates a world generator with the given seed.
func NewWorld(cfg *config.CrossyConfig, diff *config.DifficultyManager, seed int64) *World {
	w := &World{
		cols:          cfg.Field.Cols,
		lanes:         make(map[int]*Lane),
		generatedMax:  ungenerated,
		nextRoadStart: 1 << 30,
		pathCol:       cfg.Field.Cols / 2,
		rng:           rand.New(rand.NewSource(seed)),
		seed:          seed,
		cfg:           cfg,
		diff:          diff,
	}
	w.scheduleNextRoadStart(cfg.Field.SafeStartRows - 1)
	return w
}

// EnsureRange materializes every missing lane in [low, high] and evicts
// lanes outside [low-keepMargin, high+keepMargin]. Called once per tick
// with the player's row plus margins.
func (w *World) EnsureRange(low, high int) {
	// Long backward jumps are not supported: world history silently
	// restarts from the safe-start baseline.
	if w.generatedMax != ungenerated && low < w.generatedMax-resetGap {
		w.reset(low)
	}

	start := core.Max(w.generatedMax+1, low)
	for r := start; r <= high; r++ {
		if _, ok := w.lanes[r]; !ok {
			w.lanes[r] = w.makeLane(r)
		}
		if r > w.generatedMax {
			w.generatedMax = r
		}
	}

	// Backfill: rows inside the window that the sequential pass did not
	// cover (possible after small backward jumps past the keep margin)
	// become plain grass with the current path column. The scheduler is
	// bypassed, so a seam where a road run "should" be is acceptable.
	end := core.Min(high, w.generatedMax)
	for r := low; r <= end; r++ {
		if _, ok := w.lanes[r]; !ok {
			w.lanes[r] = newLane(r, w.cols, KindGrass, w.laneSeed(r, KindGrass), w.pathCol, w.cfg, w.diff)
		}
	}

	for r := range w.lanes {
		if r < low-keepMargin || r > high+keepMargin {
			delete(w.lanes, r)
		}
	}
}

// Lane returns the lane at the given row, if it is currently materialized.
// Callers must treat an absent lane as "not yet walkable", not as open.
func (w *World) Lane(row int) (*Lane, bool) {
	l, ok := w.lanes[row]
	return l, ok
}

// Advance moves all cars in every resident road lane by the elapsed time.
func (w *World) Advance(dt float64) {
	for _, l := range w.lanes {
		l.Update(dt)
	}
}

// Epoch returns the number of times world history has restarted.
// It increments on every backward-jump reset.
func (w *World) Epoch() int {
	return w.epoch
}

// reset restarts the generator from the safe-start baseline: all lanes are
// dropped, the scheduling stream is reseeded, and the path column returns
// to the center. Content generated afterwards follows the post-reset seed
// sequence.
func (w *World) reset(low int) {
	w.lanes = make(map[int]*Lane)
	w.generatedMax = low - 1
	w.roadRemaining = 0
	w.rng = rand.New(rand.NewSource(w.seed))
	w.pathCol = w.cols / 2
	w.scheduleNextRoadStart(w.cfg.Field.SafeStartRows - 1)
	w.epoch++
}

// makeLane decides the next row's terrain kind and generates it.
// Rows below the safe-start band bypass the scheduler entirely.
func (w *World) makeLane(row int) *Lane {
	safeRows := w.cfg.Field.SafeStartRows
	if row < safeRows {
		return newLane(row, w.cols, KindGrass, w.laneSeed(row, KindGrass), w.pathCol, w.cfg, w.diff)
	}

	kind := KindGrass
	if w.roadRemaining > 0 {
		kind = KindRoad
		w.roadRemaining--
	} else if row >= w.nextRoadStart {
		w.roadRemaining = w.cfg.Terrain.RoadSegmentMin
		if w.cfg.Terrain.RoadSegmentMax > w.cfg.Terrain.RoadSegmentMin {
			w.roadRemaining += w.rng.Intn(w.cfg.Terrain.RoadSegmentMax - w.cfg.Terrain.RoadSegmentMin + 1)
		}
		kind = KindRoad
		w.roadRemaining--
		w.scheduleNextRoadStart(row)
	}

	if kind == KindGrass {
		w.maybeWigglePath()
		return newLane(row, w.cols, KindGrass, w.laneSeed(row, KindGrass), w.pathCol, w.cfg, w.diff)
	}
	return newLane(row, w.cols, KindRoad, w.laneSeed(row, KindRoad), -1, w.cfg, w.diff)
}

// scheduleNextRoadStart picks the row where the next road run begins:
// the configured period with jitter, at least 2 rows out, and never
// inside the safe-start band.
func (w *World) scheduleNextRoadStart(currentRow int) {
	t := &w.cfg.Terrain
	delta := t.RoadPeriod
	if t.RoadJitter > 0 {
		delta += w.rng.Intn(2*t.RoadJitter+1) - t.RoadJitter
	}
	if delta < 2 {
		delta = 2
	}
	w.nextRoadStart = currentRow + delta
	if w.nextRoadStart < w.cfg.Field.SafeStartRows {
		w.nextRoadStart = w.cfg.Field.SafeStartRows
	}
}

// maybeWigglePath steps the guaranteed path column by -1, 0, or +1 with
// the configured probability, clamped to the field.
func (w *World) maybeWigglePath() {
	if w.rng.Float64() < w.cfg.Terrain.PathWiggleChance {
		step := w.rng.Intn(3) - 1
		w.pathCol = core.Clamp(w.pathCol+step, 0, w.cols-1)
	}
}

func (w *World) laneSeed(row int, kind Kind) int64 {
	s := int64(row) * rowSeedStride
	if kind == KindRoad {
		s ^= roadSeedSalt
	} else {
		s ^= grassSeedSalt
	}
	return s ^ w.seed
}
