package crossy

import (
	"math/rand"

	"github.com/vovakirdan/tui-crossy/internal/config"
)

// Kind classifies a lane's terrain.
type Kind int

const (
	// KindGrass is open terrain: movement is blocked per-column by trees.
	KindGrass Kind = iota
	// KindRoad is hazard terrain: movement is unrestricted but cars kill on overlap.
	KindRoad
)

// String returns a human-readable name for the lane kind.
func (k Kind) String() string {
	if k == KindRoad {
		return "road"
	}
	return "grass"
}

// Car wrap buffer and collision inset, in tiles.
const (
	carWrapBuffer = 2.0
	carInset      = 0.125
)

// Car is a translating rectangle within a road lane. Positions and sizes
// are in tile units; a car lives exactly as long as its owning lane.
type Car struct {
	X     float64 // Left edge
	W     float64 // Width
	Speed float64 // Tiles per second
	Dir   int     // +1 moves right, -1 moves left
}

// Update advances the car and wraps it around the field plus a buffer
// margin, producing a visually continuous stream from a finite car set.
func (c *Car) Update(dt float64, cols int) {
	c.X += float64(c.Dir) * c.Speed * dt
	limit := float64(cols) + carWrapBuffer
	if c.Dir == 1 && c.X > limit {
		c.X = -c.W - carWrapBuffer
	} else if c.Dir == -1 && c.X < -c.W-carWrapBuffer {
		c.X = limit
	}
}

// Span returns the horizontal collision interval of the car in tile units.
// The interval is inset slightly from the drawn rectangle so that grazing
// contact does not kill.
func (c *Car) Span() (lo, hi float64) {
	return c.X + carInset, c.X + c.W - carInset
}

// Lane owns one row of the world: either a grass row with a blocked-cell
// bitmap or a road row with a set of moving cars. Terrain content is
// generated once from the seed and never changes afterwards; only car
// positions mutate.
type Lane struct {
	Row  int
	Kind Kind

	cols      int
	blocked   []bool
	cars      []Car
	forcedCol int // Column forced open at generation time, -1 if none
}

// newLane generates a lane's content from its seed. Given the same row,
// kind, and seed the result is bit-for-bit identical, which is what lets
// evicted lanes be regenerated later without visible seams.
func newLane(row, cols int, kind Kind, seed int64, forcedCol int, cfg *config.CrossyConfig, diff *config.DifficultyManager) *Lane {
	l := &Lane{
		Row:       row,
		Kind:      kind,
		cols:      cols,
		forcedCol: -1,
	}

	rng := rand.New(rand.NewSource(seed))

	switch kind {
	case KindGrass:
		l.blocked = make([]bool, cols)

		// One column is guaranteed open regardless of tree rolls.
		guaranteedOpen := rng.Perm(cols)[0]

		for c := 0; c < cols; c++ {
			if c == guaranteedOpen {
				continue
			}
			l.blocked[c] = rng.Float64() < cfg.Terrain.TreeChance
		}

		// The world's wandering path column overrides any tree here; this
		// is what threads a traversable corridor across lane boundaries.
		if forcedCol >= 0 && forcedCol < cols {
			l.blocked[forcedCol] = false
			l.forcedCol = forcedCol
		}

	case KindRoad:
		dir := 1
		if rng.Intn(2) == 0 {
			dir = -1
		}

		baseSpeed := diff.CarSpeed(cfg.Cars.SpeedMin, cfg.Cars.SpeedMax, row)
		speed := baseSpeed * (0.85 + rng.Float64()*0.3)

		// Place cars left to right until the spawn band past the right
		// edge is covered, so no scroll position ever sees an empty road.
		x := -carWrapBuffer + rng.Float64()*(2*carWrapBuffer)
		for x < float64(cols)+3.0 {
			length := cfg.Cars.LenMin
			if cfg.Cars.LenMax > cfg.Cars.LenMin {
				length += rng.Intn(cfg.Cars.LenMax - cfg.Cars.LenMin + 1)
			}
			l.cars = append(l.cars, Car{
				X:     x,
				W:     float64(length),
				Speed: speed,
				Dir:   dir,
			})
			gap := cfg.Cars.GapMinTiles + rng.Float64()*(cfg.Cars.GapMaxTiles-cfg.Cars.GapMinTiles)
			x += float64(length) + gap
		}
	}

	return l
}

// IsBlocked reports whether the given column cannot be entered.
// Road lanes never block movement (cars kill on overlap instead), and
// out-of-range columns on grass fail closed.
func (l *Lane) IsBlocked(col int) bool {
	if l.Kind != KindGrass {
		return false
	}
	if col < 0 || col >= len(l.blocked) {
		return true
	}
	return l.blocked[col]
}

// Cars returns the lane's cars. Empty for grass lanes.
func (l *Lane) Cars() []Car {
	return l.cars
}

// ForcedCol returns the column the world generator forced open when this
// lane was created, or -1 for road lanes.
func (l *Lane) ForcedCol() int {
	return l.forcedCol
}

// Update advances all cars in a road lane. Grass lanes are static.
func (l *Lane) Update(dt float64) {
	if l.Kind != KindRoad {
		return
	}
	for i := range l.cars {
		l.cars[i].Update(dt, l.cols)
	}
}
