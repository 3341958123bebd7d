package mapgen

import (
	"errors"
	"testing"

	"github.com/vovakirdan/happyweed/internal/grid"
	"github.com/vovakirdan/happyweed/internal/rng"
	"github.com/vovakirdan/happyweed/internal/tiles"
	"github.com/vovakirdan/happyweed/internal/timing"
)

func newWallGrid(t *testing.T, level int) *grid.Grid {
	t.Helper()
	g, err := grid.New(grid.VisibleH, tiles.WallForLevel(level))
	if err != nil {
		t.Fatalf("grid.New failed: %v", err)
	}
	return g
}

func newRand(t *testing.T, state int32) *rng.Rand {
	t.Helper()
	r, err := rng.New(state)
	if err != nil {
		t.Fatalf("rng.New(%d) failed: %v", state, err)
	}
	return r
}

func TestCarveDeterminism(t *testing.T) {
	run := func() *grid.Grid {
		g := newWallGrid(t, 1)
		r := newRand(t, 1027)
		if _, err := Carve(g, r, CarveOptions{}); err != nil {
			t.Fatalf("Carve failed: %v", err)
		}
		return g
	}
	if !run().Equal(run()) {
		t.Error("same seed produced different carves")
	}
}

func TestCarveStepCapAndDrawFootprint(t *testing.T) {
	// From the set 41 level 1 seed the walk takes the full 135 steps over
	// 276 turn draws (rejected out-of-bounds moves consume a draw without
	// counting a step), leaving the generator at a known state. Pinned
	// against the reference trace.
	g := newWallGrid(t, 1)
	r := newRand(t, 1027)

	steps, err := Carve(g, r, CarveOptions{})
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}
	if steps != MaxCarveSteps {
		t.Errorf("steps = %d, want %d", steps, MaxCarveSteps)
	}
	if got := r.State(); got != 63486173 {
		t.Errorf("post-carve state = %d, want 63486173", got)
	}
}

func TestCarveNeverExceedsCap(t *testing.T) {
	for _, seed := range []int32{1, 42, 1027, 1059, 1187, 123456789} {
		g := newWallGrid(t, 1)
		r := newRand(t, seed)
		steps, err := Carve(g, r, CarveOptions{})
		if err != nil {
			t.Fatalf("seed %d: Carve failed: %v", seed, err)
		}
		if steps > MaxCarveSteps {
			t.Errorf("seed %d: %d steps exceeds cap", seed, steps)
		}
	}
}

func TestCarveStaysInteriorAndWritesLeaf(t *testing.T) {
	g := newWallGrid(t, 3)
	r := newRand(t, 98765)
	if _, err := Carve(g, r, CarveOptions{}); err != nil {
		t.Fatalf("Carve failed: %v", err)
	}

	wall := tiles.WallForLevel(3)
	leaves := 0
	for y := 0; y < grid.VisibleH; y++ {
		for x := 0; x < grid.Stride; x++ {
			got, err := g.Get(x, y)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got == wall {
				continue
			}
			if got != tiles.Leaf {
				t.Fatalf("cell (%d,%d) = %d, want wall or leaf", x, y, got)
			}
			leaves++
			// 1-based walk bounds are 2..18 x 2..11.
			if x < 1 || x > 17 || y < 1 || y > 10 {
				t.Fatalf("leaf outside walk bounds at (%d,%d)", x, y)
			}
		}
	}
	if leaves == 0 {
		t.Error("carve wrote no leaves")
	}
}

func TestCarveStepCapOption(t *testing.T) {
	g := newWallGrid(t, 1)
	r := newRand(t, 1027)
	steps, err := Carve(g, r, CarveOptions{StepCap: 10})
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}
	if steps != 10 {
		t.Errorf("steps = %d, want 10", steps)
	}

	// The option cannot raise the original bound.
	g = newWallGrid(t, 1)
	r = newRand(t, 1027)
	steps, err = Carve(g, r, CarveOptions{StepCap: 1000})
	if err != nil {
		t.Fatalf("Carve failed: %v", err)
	}
	if steps != MaxCarveSteps {
		t.Errorf("steps = %d, want %d", steps, MaxCarveSteps)
	}
}

func TestCarveTickGuardAbandonsRun(t *testing.T) {
	// With a linear one-tick-per-step provider the budget of 3 is
	// exceeded at step 4. The guard must fail the run, not emit a
	// truncated grid.
	g := newWallGrid(t, 1)
	r := newRand(t, 1027)
	steps, err := Carve(g, r, CarveOptions{Ticks: timing.LinearProvider(100)})
	if !errors.Is(err, ErrTickBudgetExceeded) {
		t.Fatalf("got %v, want ErrTickBudgetExceeded", err)
	}
	if steps != 4 {
		t.Errorf("guard fired after %d steps, want 4", steps)
	}
}

func TestCarveTickGuardDoesNotChangeOutput(t *testing.T) {
	// A guard that never fires must leave the grid and the generator
	// exactly as a guardless run does.
	plain := newWallGrid(t, 1)
	rp := newRand(t, 1027)
	if _, err := Carve(plain, rp, CarveOptions{}); err != nil {
		t.Fatalf("Carve failed: %v", err)
	}

	guarded := newWallGrid(t, 1)
	rg := newRand(t, 1027)
	idle := func(step int) int { return 0 }
	if _, err := Carve(guarded, rg, CarveOptions{Ticks: idle}); err != nil {
		t.Fatalf("guarded Carve failed: %v", err)
	}

	if !plain.Equal(guarded) {
		t.Error("idle tick guard changed the carve output")
	}
	if rp.State() != rg.State() {
		t.Errorf("idle tick guard changed draw consumption: %d vs %d", rp.State(), rg.State())
	}
}
