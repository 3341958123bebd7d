// Package mapgen builds level grids exactly the way the 1993 binary did:
// a random-walk leaf carve, special-tile placement and the 2x2 jail block,
// all drawing from one shared generator in a fixed order. Draw order and
// draw count are load-bearing everywhere; nothing here may consume or skip
// a draw the original did not.
package mapgen

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/happyweed/internal/grid"
	"github.com/vovakirdan/happyweed/internal/rng"
	"github.com/vovakirdan/happyweed/internal/tiles"
	"github.com/vovakirdan/happyweed/internal/timing"
)

// ErrTickBudgetExceeded is returned when the optional wall-clock guard
// fires before the walk completes. The guard never produces an alternate
// grid: a run it interrupts is abandoned wholesale.
var ErrTickBudgetExceeded = errors.New("mapgen: carve tick budget exceeded")

// Walk and placement bounds, 1-based interior coordinates of the visible
// window. The outer rim stays wall.
const (
	xMin = 2
	xMax = 18
	yMin = 2
	yMax = 11
)

// MaxCarveSteps is the original's hard loop bound. The walk always stops at
// this many leaf writes even when it was never stuck.
const MaxCarveSteps = 135

// Direction state as the original stored it: 0=left, 1=right, 2=down, 3=up.
const (
	dirLeft = iota
	dirRight
	dirDown
	dirUp
)

// CarveOptions tunes the walk. The zero value reproduces the shipped game.
type CarveOptions struct {
	// StepCap limits leaf writes. Values above MaxCarveSteps (and zero)
	// clamp to MaxCarveSteps; the original bound always applies.
	StepCap int

	// Ticks, when set, enables the wall-clock guard: the run fails with
	// ErrTickBudgetExceeded once the provided tick counter moves more
	// than TickBudget past its starting value in signed 16-bit space.
	// Diagnostic only; golden generation runs without it.
	Ticks timing.Provider

	// TickBudget is the guard's allowance in ticks. Zero and below use
	// the original's constant of 3.
	TickBudget int
}

func (o CarveOptions) stepCap() int {
	if o.StepCap <= 0 || o.StepCap > MaxCarveSteps {
		return MaxCarveSteps
	}
	return o.StepCap
}

func (o CarveOptions) tickBudget() int {
	if o.TickBudget <= 0 {
		return 3
	}
	return o.TickBudget
}

func inWalkBounds(x, y int) bool {
	return x >= xMin && x <= xMax && y >= yMin && y <= yMax
}

// applyTurn implements the original's turn state machine. Codes 0..3 turn
// left/right/down/up unless that would directly reverse the stored
// direction state; codes 4..15 keep the current heading.
func applyTurn(tcode, dir, dx, dy int) (int, int, int) {
	switch tcode {
	case 0:
		if dir != dirRight {
			return -1, 0, dirLeft
		}
	case 1:
		if dir != dirLeft {
			return 1, 0, dirRight
		}
	case 2:
		if dir != dirUp {
			return 0, 1, dirDown
		}
	case 3:
		if dir != dirDown {
			return 0, -1, dirUp
		}
	}
	return dx, dy, dir
}

// Carve runs the leaf walk over g, consuming draws from r. Two draws pick
// the start cell, then one draw per iteration picks a turn code. An
// in-bounds move writes the leaf code unconditionally and counts one step;
// an out-of-bounds move consumes its draw but does not advance the step
// count. Termination takes the generator state as is, with no extra draws.
//
// Returns the number of steps taken.
func Carve(g *grid.Grid, r *rng.Rand, opts CarveOptions) (int, error) {
	x := r.Bounded(14) + 3 // 4..17
	y := r.Bounded(8) + 3  // 4..11

	// Initial heading is rightward, but the stored direction state is
	// "left". The listing shipped with this mismatch and the first turn
	// decisions depend on it.
	dx, dy := 1, 0
	dir := dirLeft

	limit := opts.stepCap()
	startTick := 0
	if opts.Ticks != nil {
		startTick = opts.Ticks(0)
	}

	steps := 0
	for {
		if opts.Ticks != nil && timing.TickOver(startTick, opts.Ticks(steps), opts.tickBudget()) {
			return steps, fmt.Errorf("mapgen: carve stopped after %d steps: %w", steps, ErrTickBudgetExceeded)
		}
		if steps >= limit {
			break
		}

		tcode := r.Bounded(16) - 1 // 0..15
		dx, dy, dir = applyTurn(tcode, dir, dx, dy)

		nx, ny := x+dx, y+dy
		if inWalkBounds(nx, ny) {
			if err := g.Set(nx-1, ny-1, tiles.Leaf); err != nil {
				return steps, err
			}
			x, y = nx, ny
			steps++
		}
	}
	return steps, nil
}
