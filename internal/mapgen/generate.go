package mapgen

import (
	"fmt"

	"github.com/vovakirdan/happyweed/internal/grid"
	"github.com/vovakirdan/happyweed/internal/hud"
	"github.com/vovakirdan/happyweed/internal/rng"
	"github.com/vovakirdan/happyweed/internal/tiles"
)

// Options tunes one generation run. The zero value reproduces the shipped
// game: a 12-row buffer and the full 135-step carve with no tick guard.
type Options struct {
	// GridHeight is the backing buffer height; zero uses the visible
	// window height.
	GridHeight int

	Carve CarveOptions
}

func (o Options) gridHeight() int {
	if o.GridHeight <= 0 {
		return grid.VisibleH
	}
	return o.GridHeight
}

// Result is the output of one completed generation run.
type Result struct {
	Grid *grid.Grid

	// RowOffset is the visible-window offset the caller should read at.
	// The shipped game always plays the top window.
	RowOffset int

	// Seed is the pre-call generator state the run started from, and
	// FinalState is where the generator ended after the jail search.
	// FinalState pins the run's total draw footprint in tests.
	Seed       int32
	FinalState int32

	Steps      int // carve steps actually taken
	Placements Placements
	Jail       Point // top-left of the 2x2 jail block
}

// Generate builds the level for a (set, level) pair from its derived seed.
func Generate(set, level int) (*Result, error) {
	return GenerateWithOptions(set, level, Options{})
}

// GenerateWithOptions is Generate with explicit run options.
func GenerateWithOptions(set, level int, opts Options) (*Result, error) {
	seed, err := rng.SeedForLevel(set, level)
	if err != nil {
		return nil, err
	}
	return GenerateSeeded(level, seed, opts)
}

// GenerateSeeded builds a level from an explicitly injected pre-call
// generator state, bypassing seed derivation. Used to replay recorded
// sequences in tests.
//
// The run is one strictly ordered pipeline over a single generator: carve,
// placements, jail. Errors from any stage propagate unchanged; a failed
// run's buffer is meaningless and is not returned.
func GenerateSeeded(level int, state int32, opts Options) (*Result, error) {
	if level < rng.MinLevel || level > rng.MaxLevel {
		return nil, fmt.Errorf("mapgen: level %d: %w", level, rng.ErrInvalidLevel)
	}

	r, err := rng.New(state)
	if err != nil {
		return nil, err
	}

	g, err := grid.New(opts.gridHeight(), tiles.WallForLevel(level))
	if err != nil {
		return nil, err
	}
	if err := hud.Bake(g, level); err != nil {
		return nil, err
	}

	steps, err := Carve(g, r, opts.Carve)
	if err != nil {
		return nil, err
	}
	placements, err := PlaceAll(g, r, level)
	if err != nil {
		return nil, err
	}
	jail, err := PlaceJail(g, r, level)
	if err != nil {
		return nil, err
	}

	return &Result{
		Grid:       g,
		RowOffset:  0,
		Seed:       state,
		FinalState: r.State(),
		Steps:      steps,
		Placements: placements,
		Jail:       jail,
	}, nil
}

// Window returns the result's visible 20x12 window.
func (res *Result) Window() ([][]tiles.Tile, error) {
	return res.Grid.VisibleWindow(res.RowOffset)
}
