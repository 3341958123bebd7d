// Package hud bakes the level-number overlay into the tilemap. The original
// wrote the three digit tiles straight into the top-left corner of the grid
// before carving; golden comparisons mask those cells back out.
package hud

import (
	"fmt"

	"github.com/vovakirdan/happyweed/internal/grid"
	"github.com/vovakirdan/happyweed/internal/tiles"
)

// Digits splits a level number into its hundreds, tens and ones digits,
// zero padded, each usable directly as a digit tile code.
func Digits(level int) (h, t, o int, err error) {
	if level < 0 || level > 999 {
		return 0, 0, 0, fmt.Errorf("hud: level %d outside 0..999", level)
	}
	return (level / 100) % 10, (level / 10) % 10, level % 10, nil
}

// Bake writes the level digits into the top-left three cells.
func Bake(g *grid.Grid, level int) error {
	h, t, o, err := Digits(level)
	if err != nil {
		return err
	}
	for i, d := range []int{h, t, o} {
		if err := g.Set(i, 0, tiles.Tile(d)); err != nil {
			return err
		}
	}
	return nil
}

// Mask rewrites the digit cells back to the level's wall code, restoring
// the value generation would have left there. Reference grids are compared
// after masking so the overlay never participates in diffs.
func Mask(g *grid.Grid, level int) error {
	wall := tiles.WallForLevel(level)
	for i := 0; i < 3; i++ {
		if err := g.Set(i, 0, wall); err != nil {
			return err
		}
	}
	return nil
}
