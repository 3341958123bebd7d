package mapgen

import (
	"fmt"

	"github.com/vovakirdan/happyweed/internal/grid"
	"github.com/vovakirdan/happyweed/internal/rng"
	"github.com/vovakirdan/happyweed/internal/tiles"
)

// jailOpen is the jail search's adjacency test: walkable floor only. The
// player and pursuer codes sit inside the open band but do not count.
func jailOpen(t tiles.Tile) bool {
	return tiles.IsOpen(t) && t != tiles.Player && t != tiles.Cop
}

// jailFits reports whether the 2x2 block with top-left (tlx, tly) is fully
// interior, all wall, and open-adjacent at its bottom-right corner.
func jailFits(g *grid.Grid, wall tiles.Tile, tlx, tly int) (bool, error) {
	if tlx < xMin || tlx > xMax-1 || tly < yMin || tly > yMax-1 {
		return false, nil
	}
	for dy := 0; dy <= 1; dy++ {
		for dx := 0; dx <= 1; dx++ {
			t, err := get1(g, tlx+dx, tly+dy)
			if err != nil {
				return false, err
			}
			if t != wall {
				return false, nil
			}
		}
	}
	brx, bry := tlx+1, tly+1
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		t, err := get1(g, brx+d[0], bry+d[1])
		if err != nil {
			return false, err
		}
		if jailOpen(t) {
			return true, nil
		}
	}
	return false, nil
}

// PlaceJail runs last in the pipeline: it samples the same interior span as
// the placer, treats the draw as the bottom-right corner of a 2x2
// candidate, and on the first fit writes the four jail codes top-left,
// top-right, bottom-left, bottom-right in that order. Earlier specials
// never land inside the block since every cell must still be the level
// wall.
//
// Returns the 1-based top-left coordinate of the block.
func PlaceJail(g *grid.Grid, r *rng.Rand, level int) (Point, error) {
	wall := tiles.WallForLevel(level)

	found := false
	for tly := yMin; tly <= yMax-1 && !found; tly++ {
		for tlx := xMin; tlx <= xMax-1 && !found; tlx++ {
			ok, err := jailFits(g, wall, tlx, tly)
			if err != nil {
				return Point{}, err
			}
			found = ok
		}
	}
	if !found {
		return Point{}, fmt.Errorf("mapgen: jail block on level %d: %w", level, ErrNoValidPlacement)
	}

	for {
		cx := r.Bounded(17) + 1 // 2..18
		cy := r.Bounded(10) + 1 // 2..11
		tlx, tly := cx-1, cy-1

		ok, err := jailFits(g, wall, tlx, tly)
		if err != nil {
			return Point{}, err
		}
		if !ok {
			continue
		}

		writes := [4]struct {
			dx, dy int
			t      tiles.Tile
		}{
			{0, 0, tiles.JailTL},
			{1, 0, tiles.JailTR},
			{0, 1, tiles.JailBL},
			{1, 1, tiles.JailBR},
		}
		for _, w := range writes {
			if err := g.Set(tlx-1+w.dx, tly-1+w.dy, w.t); err != nil {
				return Point{}, err
			}
		}
		return Point{X: tlx, Y: tly}, nil
	}
}
