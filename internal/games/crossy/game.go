// Package crossy implements an endless lane-crossing arcade game.
// The player hops a chicken across procedurally generated lanes of grass
// and traffic, scored by the furthest row reached; stalling too long in
// one row is fatal.
package crossy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/core"
	"github.com/vovakirdan/tui-crossy/internal/registry"
)

// Visual characters for rendering
const (
	GrassChar   = '░'
	TreeChar    = '♣'
	CarChar     = '█'
	PlayerBody  = '█'
	PlayerHead  = '◆'
	BorderChar  = '│'
	RoadDash    = '-'
	tileW       = 2 // Screen cells per tile; lanes are one cell tall
	cameraLerp  = 0.12
	cameraPlace = 0.35 // Player's preferred height above the field bottom
)

// DeathCause identifies how a run ended.
type DeathCause string

const (
	CauseNone  DeathCause = ""
	CauseCar   DeathCause = "car"
	CauseEagle DeathCause = "eagle"
	CauseFell  DeathCause = "out_of_field"
)

// Message returns the game-over subtitle for this cause.
func (c DeathCause) Message() string {
	switch c {
	case CauseEagle:
		return "You took too long and an eagle ate you."
	case CauseCar:
		return "You got hit by a car."
	case CauseFell:
		return "You hopped out of the field."
	default:
		return "You died."
	}
}

// Game implements the Crossy game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.CrossyConfig
	diff    *config.DifficultyManager
	world   *World

	col, row int // Logical player position, in tiles / rows

	hopping    bool
	hopT       float64
	hopFromCol float64
	hopFromRow float64
	renderCol  float64
	renderRow  float64

	alive     bool
	cause     DeathCause
	score     int // Furthest row reached
	timeInRow float64
	camera    float64 // World row shown at the bottom playfield line
	paused    bool
	gameOver  bool
	tickCount int
	dt        float64
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Crossy game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "crossy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crossy Chicken"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadCrossy(configPath)
	if err != nil {
		cfg = config.DefaultCrossyConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyCrossyPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.world = NewWorld(&g.cfg, g.diff, runtime.Seed)

	g.col = cfg.Field.Cols / 2
	g.row = 0
	g.renderCol = float64(g.col)
	g.renderRow = float64(g.row)
	g.hopping = false
	g.hopT = 0

	g.alive = true
	g.cause = CauseNone
	g.score = 0
	g.timeInRow = 0
	g.camera = 0
	g.paused = false
	g.gameOver = false
	g.tickCount = 0

	g.world.EnsureRange(g.row-cfg.Field.LanesBehind, g.row+cfg.Field.LanesAhead)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Movement requests; rows increase away from the start, which is
	// "up" on screen.
	switch {
	case in.Has(core.ActionUp):
		g.tryMove(0, 1)
	case in.Has(core.ActionDown):
		g.tryMove(0, -1)
	case in.Has(core.ActionLeft):
		g.tryMove(-1, 0)
	case in.Has(core.ActionRight):
		g.tryMove(1, 0)
	}

	g.updateHop()

	g.timeInRow += g.dt
	if g.alive && g.timeInRow >= g.cfg.Player.TimeoutSeconds {
		g.kill(CauseEagle)
	}

	g.world.EnsureRange(g.row-g.cfg.Field.LanesBehind, g.row+g.cfg.Field.LanesAhead)
	g.world.Advance(g.dt)

	g.updateCamera()

	if g.alive {
		g.checkCarCollision()
	}

	if !g.alive {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// tryMove validates and starts a hop to an adjacent tile. A target column
// outside the field is fatal; a missing lane or a blocked cell ignores
// the request.
func (g *Game) tryMove(dcol, drow int) {
	if !g.alive || g.hopping {
		return
	}

	targetCol := g.col + dcol
	targetRow := g.row + drow

	if targetCol < 0 || targetCol >= g.cfg.Field.Cols {
		g.kill(CauseFell)
		return
	}

	lane, ok := g.world.Lane(targetRow)
	if !ok {
		return
	}
	if lane.IsBlocked(targetCol) {
		return
	}

	g.hopping = true
	g.hopT = 0
	g.hopFromCol = float64(g.col)
	g.hopFromRow = float64(g.row)

	g.col = targetCol
	g.row = targetRow
	if g.row > g.score {
		g.score = g.row
	}

	if drow != 0 {
		g.timeInRow = 0
	}
}

// updateHop advances the hop animation toward the logical position.
func (g *Game) updateHop() {
	if !g.hopping {
		g.renderCol = float64(g.col)
		g.renderRow = float64(g.row)
		return
	}

	g.hopT += g.dt / g.cfg.Player.HopTime
	t := core.ClampF(g.hopT, 0, 1)
	g.renderCol = g.hopFromCol + (float64(g.col)-g.hopFromCol)*t
	g.renderRow = g.hopFromRow + (float64(g.row)-g.hopFromRow)*t
	if t >= 1 {
		g.hopping = false
	}
}

// updateCamera eases the camera toward keeping the player a fixed fraction
// above the bottom of the playfield. The camera never scrolls below the
// start row.
func (g *Game) updateCamera() {
	visible := g.visibleRows()
	target := g.renderRow - cameraPlace*float64(visible)
	if target < 0 {
		target = 0
	}
	g.camera += (target - g.camera) * cameraLerp
	if g.camera < 0 {
		g.camera = 0
	}
}

// checkCarCollision kills the player when a car overlaps them on a road lane.
func (g *Game) checkCarCollision() {
	lane, ok := g.world.Lane(g.row)
	if !ok || lane.Kind != KindRoad {
		return
	}

	playerLo := g.renderCol + 0.2
	playerHi := g.renderCol + 0.8
	for _, car := range lane.Cars() {
		lo, hi := car.Span()
		if playerLo < hi && lo < playerHi {
			g.kill(CauseCar)
			return
		}
	}
}

func (g *Game) kill(cause DeathCause) {
	if !g.alive {
		return
	}
	g.alive = false
	g.cause = cause
}

// visibleRows returns how many lanes fit on screen below the HUD line.
func (g *Game) visibleRows() int {
	v := g.runtime.ScreenH - 2
	if v < 1 {
		v = 1
	}
	return v
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	fieldW := g.cfg.Field.Cols * tileW
	fieldX := (dst.Width() - fieldW) / 2
	bottomY := dst.Height() - 2
	camBase := int(math.Floor(g.camera + 0.5))

	for y := 1; y <= bottomY; y++ {
		row := camBase + (bottomY - y)
		lane, ok := g.world.Lane(row)
		if !ok {
			continue
		}
		g.drawLane(dst, lane, fieldX, y)
	}

	// Field borders
	dst.DrawVLine(fieldX-1, 1, bottomY, BorderChar)
	dst.DrawVLine(fieldX+fieldW, 1, bottomY, BorderChar)

	g.drawPlayer(dst, fieldX, bottomY)

	// HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	if g.alive {
		remaining := g.cfg.Player.TimeoutSeconds - g.timeInRow
		if remaining < 0 {
			remaining = 0
		}
		timerText := fmt.Sprintf(" Move timer: %.1fs ", remaining)
		dst.DrawText(dst.Width()-len(timerText)-2, 0, timerText)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		subtitle := fmt.Sprintf("%s  Score: %d  |  Press R to restart", g.cause.Message(), g.score)
		g.drawCenteredMessage(dst, "GAME OVER", subtitle)
	}
}

// drawLane renders one lane at the given screen row.
func (g *Game) drawLane(dst *core.Screen, lane *Lane, fieldX, y int) {
	fieldW := g.cfg.Field.Cols * tileW

	if lane.Kind == KindGrass {
		for x := 0; x < fieldW; x++ {
			dst.SetWithColor(fieldX+x, y, GrassChar, core.ColorGreen)
		}
		for c := 0; c < g.cfg.Field.Cols; c++ {
			if !lane.IsBlocked(c) {
				continue
			}
			x := fieldX + c*tileW
			dst.SetWithColor(x, y, TreeChar, core.ColorBrightGreen)
			dst.SetWithColor(x+1, y, TreeChar, core.ColorBrightGreen)
		}
		return
	}

	// Road: dark background with sparse lane dashes, then cars on top.
	for x := 0; x < fieldW; x++ {
		r := ' '
		if x%6 == 2 {
			r = RoadDash
		}
		dst.SetWithColor(fieldX+x, y, r, core.ColorGray)
	}

	for i, car := range lane.Cars() {
		color := core.ColorBrightRed
		if i%2 == 1 {
			color = core.ColorBrightYellow
		}
		startX := fieldX + int(math.Round(car.X*tileW))
		endX := fieldX + int(math.Round((car.X+car.W)*tileW))
		for x := startX; x < endX; x++ {
			if x >= fieldX && x < fieldX+fieldW {
				dst.SetWithColor(x, y, CarChar, color)
			}
		}
	}
}

// drawPlayer renders the chicken at its interpolated position.
func (g *Game) drawPlayer(dst *core.Screen, fieldX, bottomY int) {
	if !g.alive && g.cause != CauseCar {
		return
	}

	py := bottomY - int(math.Round(g.renderRow-g.camera))
	px := fieldX + int(math.Round(g.renderCol*tileW))
	if py < 1 || py > bottomY {
		return
	}

	dst.SetWithColor(px, py, PlayerBody, core.ColorBrightWhite)
	dst.SetWithColor(px+1, py, PlayerHead, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Detail:   string(g.cause),
	}
}

// Register the game with the registry
func init() {
	registry.Register("crossy", func() registry.Game {
		return New()
	})
}
