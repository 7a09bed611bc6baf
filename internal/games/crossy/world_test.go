package crossy

import (
	"testing"

	"github.com/vovakirdan/tui-crossy/internal/config"
)

func newTestWorld(seed int64) *World {
	cfg := config.DefaultCrossyConfig()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	return NewWorld(&cfg, diff, seed)
}

func TestSafeStartRowsAlwaysGrass(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w := newTestWorld(seed)
		w.EnsureRange(0, 5)

		for r := 0; r <= 5; r++ {
			lane, ok := w.Lane(r)
			if !ok {
				t.Fatalf("seed %d: lane %d missing after EnsureRange", seed, r)
			}
			if lane.Kind != KindGrass {
				t.Errorf("seed %d: safe-start lane %d is %v, expected grass", seed, r, lane.Kind)
			}

			open := 0
			for c := 0; c < w.cols; c++ {
				if !lane.IsBlocked(c) {
					open++
				}
			}
			if open == 0 {
				t.Errorf("seed %d: safe-start lane %d has no open column", seed, r)
			}
		}
	}
}

func TestNegativeRowsAreGrass(t *testing.T) {
	w := newTestWorld(1337)
	w.EnsureRange(-10, 30)

	for r := -10; r < 0; r++ {
		lane, ok := w.Lane(r)
		if !ok {
			t.Fatalf("lane %d missing", r)
		}
		if lane.Kind != KindGrass {
			t.Errorf("lane %d below the start is %v, expected grass", r, lane.Kind)
		}
	}
}

func TestWindowing(t *testing.T) {
	w := newTestWorld(1337)
	w.EnsureRange(0, 40)

	for r := 0; r <= 40; r++ {
		if _, ok := w.Lane(r); !ok {
			t.Errorf("lane %d should be present after EnsureRange(0, 40)", r)
		}
	}
	if _, ok := w.Lane(-3); ok {
		t.Error("lane -3 should be outside the retention window")
	}
	if _, ok := w.Lane(43); ok {
		t.Error("lane 43 should be outside the retention window")
	}

	// Slide the window forward and check eviction behind it.
	w.EnsureRange(10, 50)
	for r := 10; r <= 50; r++ {
		if _, ok := w.Lane(r); !ok {
			t.Errorf("lane %d should be present after EnsureRange(10, 50)", r)
		}
	}
	if _, ok := w.Lane(7); ok {
		t.Error("lane 7 should have been evicted")
	}
	if _, ok := w.Lane(53); ok {
		t.Error("lane 53 should be outside the retention window")
	}
}

func TestTraversablePathThroughGrass(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		w := newTestWorld(seed)
		w.EnsureRange(0, 200)

		for r := 0; r <= 200; r++ {
			lane, ok := w.Lane(r)
			if !ok {
				t.Fatalf("seed %d: lane %d missing", seed, r)
			}
			if lane.Kind != KindGrass {
				continue
			}
			fc := lane.ForcedCol()
			if fc < 0 {
				t.Errorf("seed %d: grass lane %d has no forced column", seed, r)
				continue
			}
			if lane.IsBlocked(fc) {
				t.Errorf("seed %d: grass lane %d blocks its own path column %d", seed, r, fc)
			}
		}
	}
}

func TestPathColumnWanders(t *testing.T) {
	w := newTestWorld(1337)
	w.EnsureRange(0, 200)

	cols := make(map[int]bool)
	prev := -1
	for r := 0; r <= 200; r++ {
		lane, _ := w.Lane(r)
		if lane.Kind != KindGrass {
			continue
		}
		fc := lane.ForcedCol()
		cols[fc] = true
		if prev >= 0 {
			diff := fc - prev
			if diff < -1 || diff > 1 {
				t.Errorf("path column jumped from %d to %d between grass rows", prev, fc)
			}
		}
		if fc < 0 || fc >= w.cols {
			t.Errorf("path column %d outside the field", fc)
		}
		prev = fc
	}

	if len(cols) < 2 {
		t.Error("path column never moved over 200 rows")
	}
}

func TestSchedulerProducesRoads(t *testing.T) {
	w := newTestWorld(1337)
	w.EnsureRange(0, 60)

	roads := 0
	for r := 0; r <= 60; r++ {
		lane, _ := w.Lane(r)
		if lane.Kind != KindRoad {
			continue
		}
		roads++
		if r < w.cfg.Field.SafeStartRows {
			t.Errorf("road lane %d inside the safe-start band", r)
		}
		if len(lane.Cars()) == 0 {
			t.Errorf("road lane %d has no cars", r)
		}
	}
	if roads == 0 {
		t.Error("no road lanes generated in 60 rows")
	}
}

func TestBackwardJumpResets(t *testing.T) {
	w := newTestWorld(1337)

	w.EnsureRange(0, 40)
	kinds1 := make([]Kind, 41)
	for r := 0; r <= 40; r++ {
		lane, _ := w.Lane(r)
		kinds1[r] = lane.Kind
	}

	// A far forward jump does not reset; generation skips ahead.
	w.EnsureRange(100, 140)
	if w.Epoch() != 0 {
		t.Fatalf("forward jump should not reset, epoch = %d", w.Epoch())
	}
	if _, ok := w.Lane(120); !ok {
		t.Fatal("lane 120 missing after forward jump")
	}

	// Jumping the window far back behind the generation point restarts
	// world history.
	w.EnsureRange(0, 40)
	if w.Epoch() != 1 {
		t.Fatalf("backward jump should reset, epoch = %d", w.Epoch())
	}
	if _, ok := w.Lane(120); ok {
		t.Error("lane 120 should have been dropped by the reset")
	}

	// Same seed, same post-reset sequence: regenerated kinds match the
	// first epoch exactly.
	for r := 0; r <= 40; r++ {
		lane, ok := w.Lane(r)
		if !ok {
			t.Fatalf("lane %d missing after reset", r)
		}
		if lane.Kind != kinds1[r] {
			t.Errorf("lane %d regenerated as %v, was %v in the first epoch", r, lane.Kind, kinds1[r])
		}
	}
}

func TestLaneContentSurvivesReset(t *testing.T) {
	w := newTestWorld(99)
	w.EnsureRange(0, 60)

	// Find a road lane and record its freshly generated cars.
	roadRow := -1
	for r := 6; r <= 60; r++ {
		if lane, _ := w.Lane(r); lane.Kind == KindRoad {
			roadRow = r
			break
		}
	}
	if roadRow < 0 {
		t.Fatal("no road lane in the first 60 rows")
	}
	lane, _ := w.Lane(roadRow)
	before := make([]Car, len(lane.Cars()))
	copy(before, lane.Cars())

	// Force an eviction and a reset, then look at the same row again.
	w.EnsureRange(200, 240)
	w.EnsureRange(0, 60)
	if w.Epoch() != 1 {
		t.Fatalf("expected one reset, epoch = %d", w.Epoch())
	}

	lane, ok := w.Lane(roadRow)
	if !ok {
		t.Fatalf("lane %d missing after reset", roadRow)
	}
	if lane.Kind != KindRoad {
		t.Fatalf("lane %d regenerated as %v, expected road", roadRow, lane.Kind)
	}
	after := lane.Cars()
	if len(after) != len(before) {
		t.Fatalf("car count changed across regeneration: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("car %d changed across regeneration: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestBackfillProducesGrassSeam(t *testing.T) {
	w := newTestWorld(1337)

	w.EnsureRange(30, 70)
	// A small backward step: not far enough to reset, but rows 25..27
	// were evicted and sit below the sequential generation start.
	w.EnsureRange(25, 65)

	if w.Epoch() != 0 {
		t.Fatalf("small backward step should not reset, epoch = %d", w.Epoch())
	}

	for r := 25; r <= 27; r++ {
		lane, ok := w.Lane(r)
		if !ok {
			t.Fatalf("lane %d missing after backfill", r)
		}
		if lane.Kind != KindGrass {
			t.Errorf("backfilled lane %d is %v, expected plain grass", r, lane.Kind)
		}
		if lane.ForcedCol() != w.pathCol {
			t.Errorf("backfilled lane %d forced col %d, expected current path col %d",
				r, lane.ForcedCol(), w.pathCol)
		}
	}
}

func TestAdvanceMovesCars(t *testing.T) {
	w := newTestWorld(1337)
	w.EnsureRange(0, 60)

	roadRow := -1
	for r := 6; r <= 60; r++ {
		if lane, _ := w.Lane(r); lane.Kind == KindRoad {
			roadRow = r
			break
		}
	}
	if roadRow < 0 {
		t.Fatal("no road lane generated")
	}

	lane, _ := w.Lane(roadRow)
	before := lane.Cars()[0].X

	w.Advance(0.1)

	after := lane.Cars()[0].X
	if before == after {
		t.Error("Advance should move cars on road lanes")
	}

	expected := before + float64(lane.Cars()[0].Dir)*lane.Cars()[0].Speed*0.1
	if after != expected {
		t.Errorf("car moved to %.4f, expected %.4f", after, expected)
	}
}
