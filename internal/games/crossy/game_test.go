package crossy

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-crossy/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Test that given the same seed and inputs, the game produces identical results
	cfg := testRuntime(12345)

	// Hop forward every 12 ticks; a hop takes about 9 ticks at 60fps,
	// so the player keeps crossing lanes and eventually meets traffic.
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%12 == 0 {
			inputSequence[i].Set(core.ActionUp)
		}
	}

	run := func() (*Game, core.GameState) {
		g := New()
		g.Reset(cfg)
		var state core.GameState
		for _, in := range inputSequence {
			result := g.Step(in)
			state = result.State
			if state.GameOver {
				break
			}
		}
		return g, state
	}

	g1, state1 := run()
	g2, state2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if state1.Detail != state2.Detail {
		t.Errorf("Determinism failed: death causes differ. Run1=%q, Run2=%q", state1.Detail, state2.Detail)
	}
	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("Determinism failed: snapshots differ.\nRun1=%+v\nRun2=%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime(42)

	g := New()
	g.Reset(cfg)

	// Play a few ticks
	for i := 0; i < 50; i++ {
		in := core.NewInputFrame()
		if i%10 == 0 {
			in.Set(core.ActionUp)
		}
		g.Step(in)
	}

	// Reset should clear state
	g.Reset(cfg)

	if g.score != 0 {
		t.Errorf("Reset should clear score, got %d", g.score)
	}
	if g.row != 0 {
		t.Errorf("Reset should put the player back on row 0, got %d", g.row)
	}
	if g.col != g.cfg.Field.Cols/2 {
		t.Errorf("Reset should center the player, got col %d", g.col)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
	if g.cause != CauseNone {
		t.Errorf("Reset should clear death cause, got %q", g.cause)
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}
}

func TestGameHopForward(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// The starting rows are all grass with the path column open, so the
	// first forward hop is always legal.
	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up)

	if g.row != 1 {
		t.Fatalf("Hop should move the player to row 1, got %d", g.row)
	}
	if g.score != 1 {
		t.Errorf("Score should track the furthest row, got %d", g.score)
	}
	if !g.hopping {
		t.Error("Player should be mid-hop right after moving")
	}
	if g.renderRow <= 0 || g.renderRow >= 1 {
		t.Errorf("Render row should interpolate between rows, got %f", g.renderRow)
	}

	// A second request while airborne is ignored.
	g.Step(up)
	if g.row != 1 {
		t.Errorf("Moves should be ignored mid-hop, got row %d", g.row)
	}

	// Let the hop finish.
	noInput := core.NewInputFrame()
	for i := 0; i < 20; i++ {
		g.Step(noInput)
	}
	if g.hopping {
		t.Error("Hop should have finished")
	}
	if g.renderRow != 1 {
		t.Errorf("Render row should settle on the logical row, got %f", g.renderRow)
	}

	// Retreating does not lower the score.
	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	g.Step(down)
	for i := 0; i < 20; i++ {
		g.Step(noInput)
	}
	if g.row != 0 {
		t.Errorf("Player should be back on row 0, got %d", g.row)
	}
	if g.score != 1 {
		t.Errorf("Score should not drop when retreating, got %d", g.score)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	pauseInput := core.NewInputFrame()
	pauseInput.Set(core.ActionPause)
	g.Step(pauseInput)

	if !g.paused {
		t.Error("Game should be paused")
	}

	ticksBefore := g.tickCount
	timerBefore := g.timeInRow

	noInput := core.NewInputFrame()
	g.Step(noInput)

	if g.tickCount != ticksBefore {
		t.Error("Ticks should not advance while paused")
	}
	if g.timeInRow != timerBefore {
		t.Error("Move timer should not advance while paused")
	}

	g.Step(pauseInput)
	if g.paused {
		t.Error("Game should be unpaused")
	}
}

func TestStallTimeoutKills(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	noInput := core.NewInputFrame()
	var state core.GameState
	for i := 0; i < 650; i++ {
		state = g.Step(noInput).State
		if state.GameOver {
			break
		}
	}

	if !state.GameOver {
		t.Fatal("Standing still past the move timeout should end the game")
	}
	if g.cause != CauseEagle {
		t.Errorf("Expected cause %q, got %q", CauseEagle, g.cause)
	}
	if state.Detail != string(CauseEagle) {
		t.Errorf("State should carry the death cause, got %q", state.Detail)
	}
}

func TestMoveTimerResetsOnRowChange(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	noInput := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(noInput)
	}
	if g.timeInRow <= 1.0 {
		t.Fatalf("Move timer should accumulate, got %f", g.timeInRow)
	}

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up)

	if g.timeInRow > 0.1 {
		t.Errorf("Changing rows should reset the move timer, got %f", g.timeInRow)
	}
}

func TestHopOutOfFieldIsFatal(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.col = 0
	g.renderCol = 0

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	result := g.Step(left)

	if !result.State.GameOver {
		t.Fatal("Hopping past the field edge should end the game")
	}
	if g.cause != CauseFell {
		t.Errorf("Expected cause %q, got %q", CauseFell, g.cause)
	}
}

func TestCarCollisionKills(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	// Park a stationary car on the player's tile.
	g.world.lanes[g.row] = &Lane{
		Row:  g.row,
		Kind: KindRoad,
		cols: g.cfg.Field.Cols,
		cars: []Car{{X: float64(g.col) - 0.5, W: 2, Speed: 0, Dir: 1}},
	}

	noInput := core.NewInputFrame()
	result := g.Step(noInput)

	if !result.State.GameOver {
		t.Fatal("Overlapping a car should end the game")
	}
	if g.cause != CauseCar {
		t.Errorf("Expected cause %q, got %q", CauseCar, g.cause)
	}
	if result.State.Detail != string(CauseCar) {
		t.Errorf("State should carry the death cause, got %q", result.State.Detail)
	}
}

func TestBlockedHopIsIgnored(t *testing.T) {
	g := New()
	g.Reset(testRuntime(9))

	// Fully block the lane above the player.
	blocked := make([]bool, g.cfg.Field.Cols)
	for i := range blocked {
		blocked[i] = true
	}
	g.world.lanes[1] = &Lane{
		Row:     1,
		Kind:    KindGrass,
		cols:    g.cfg.Field.Cols,
		blocked: blocked,
	}

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up)

	if g.row != 0 {
		t.Errorf("Hop into a tree should be ignored, got row %d", g.row)
	}
	if g.gameOver {
		t.Error("A blocked hop should not end the game")
	}
}

func TestGameRender(t *testing.T) {
	cfg := testRuntime(1)

	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	// Check that screen has content (not all spaces)
	str := screen.String()
	hasContent := false
	for _, ch := range str {
		if ch != ' ' && ch != '\n' {
			hasContent = true
			break
		}
	}
	if !hasContent {
		t.Error("Render should draw something to the screen")
	}

	// Field borders frame the lanes.
	fieldW := g.cfg.Field.Cols * tileW
	fieldX := (cfg.ScreenW - fieldW) / 2
	if screen.Get(fieldX-1, 5) != BorderChar {
		t.Errorf("Left border should be drawn, got %q", screen.Get(fieldX-1, 5))
	}
	if screen.Get(fieldX+fieldW, 5) != BorderChar {
		t.Errorf("Right border should be drawn, got %q", screen.Get(fieldX+fieldW, 5))
	}

	// The starting lane is grass.
	bottomY := cfg.ScreenH - 2
	foundGrass := false
	for x := fieldX; x < fieldX+fieldW; x++ {
		if screen.Get(x, bottomY) == GrassChar {
			foundGrass = true
			break
		}
	}
	if !foundGrass {
		t.Error("Starting lane should render as grass")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.col = 0

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)

	if !g.gameOver {
		t.Fatal("Expected game over")
	}

	snap := g.Snapshot()
	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	for i := 0; i < 10; i++ {
		g.Step(up)
	}
	if !reflect.DeepEqual(snap, g.Snapshot()) {
		t.Error("State should not change after game over")
	}
}
