package mapgen

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/happyweed/internal/grid"
	"github.com/vovakirdan/happyweed/internal/rng"
	"github.com/vovakirdan/happyweed/internal/tiles"
)

// ErrNoValidPlacement is returned when the playfield has no wall cell with
// an open neighbor left to place on. The run is unusable at that point;
// retrying would consume draws and corrupt reproducibility, so the error
// propagates instead.
var ErrNoValidPlacement = errors.New("mapgen: no open-adjacent wall remaining")

// Point is a 1-based interior coordinate chosen by a placement.
type Point struct {
	X, Y int
}

// Placements records where each special tile landed during one run.
// Immutable once the run completes.
type Placements struct {
	Supers []Point
	Cops   [3]Point
	Exit   Point
	Player Point
}

// SuperCount returns how many super pickups a level receives: three on
// levels 1..4, two on 5..9, one from level 10 on.
func SuperCount(level int) int {
	n := 3 - level/5
	if n < 1 {
		n = 1
	}
	return n
}

func get1(g *grid.Grid, x, y int) (tiles.Tile, error) {
	return g.Get(x-1, y-1)
}

// hasOpenNeighbor reports whether any 4-neighbor of the 1-based interior
// cell (x, y) is open floor.
func hasOpenNeighbor(g *grid.Grid, x, y int) (bool, error) {
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		t, err := get1(g, x+d[0], y+d[1])
		if err != nil {
			return false, err
		}
		if tiles.IsOpen(t) {
			return true, nil
		}
	}
	return false, nil
}

// anyPlacementCandidate reports whether some interior cell is still the
// level wall with an open neighbor. Checked before sampling so a saturated
// grid fails without touching the generator.
func anyPlacementCandidate(g *grid.Grid, wall tiles.Tile) (bool, error) {
	for y := yMin; y <= yMax; y++ {
		for x := xMin; x <= xMax; x++ {
			t, err := get1(g, x, y)
			if err != nil {
				return false, err
			}
			if t != wall {
				continue
			}
			ok, err := hasOpenNeighbor(g, x, y)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
	}
	return false, nil
}

// PlaceItem samples interior cells until one is the level's wall with at
// least one open neighbor, then writes the given code there. Every attempt
// consumes exactly two draws whether or not it is rejected; repeats landing
// on the same rejected cell are expected and reproduce the original's draw
// footprint.
func PlaceItem(g *grid.Grid, r *rng.Rand, level int, t tiles.Tile) (Point, error) {
	wall := tiles.WallForLevel(level)
	ok, err := anyPlacementCandidate(g, wall)
	if err != nil {
		return Point{}, err
	}
	if !ok {
		return Point{}, fmt.Errorf("mapgen: placing tile %d on level %d: %w", t, level, ErrNoValidPlacement)
	}

	for {
		x := r.Bounded(17) + 1 // 2..18
		y := r.Bounded(10) + 1 // 2..11

		cur, err := get1(g, x, y)
		if err != nil {
			return Point{}, err
		}
		if cur != wall {
			continue
		}
		open, err := hasOpenNeighbor(g, x, y)
		if err != nil {
			return Point{}, err
		}
		if !open {
			continue
		}
		if err := g.Set(x-1, y-1, t); err != nil {
			return Point{}, err
		}
		return Point{X: x, Y: y}, nil
	}
}

// PlaceAll runs the fixed placement order: super pickups, the three
// pursuers, the exit, then the player start. The order feeds the draw
// stream the jail search depends on.
func PlaceAll(g *grid.Grid, r *rng.Rand, level int) (Placements, error) {
	var p Placements

	super := tiles.SuperForLevel(level)
	for i := 0; i < SuperCount(level); i++ {
		pt, err := PlaceItem(g, r, level, super)
		if err != nil {
			return p, err
		}
		p.Supers = append(p.Supers, pt)
	}

	for i := range p.Cops {
		pt, err := PlaceItem(g, r, level, tiles.Cop)
		if err != nil {
			return p, err
		}
		p.Cops[i] = pt
	}

	var err error
	if p.Exit, err = PlaceItem(g, r, level, tiles.Exit); err != nil {
		return p, err
	}
	if p.Player, err = PlaceItem(g, r, level, tiles.Player); err != nil {
		return p, err
	}
	return p, nil
}
