// Package grid provides the fixed 30-column playfield buffer behind the
// 20x12 visible window. Cells hold raw tile codes; interpretation lives in
// the tiles package.
package grid

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/happyweed/internal/tiles"
)

// Buffer geometry. The backing store is wider than the visible window, the
// way the original kept its 30-wide tilemap rows.
const (
	Stride   = 30 // backing columns
	VisibleW = 20
	VisibleH = 12
)

// ErrOutOfBounds is returned for any access outside the declared buffer
// dimensions. During generation it indicates a carver or placer defect, not
// a recoverable condition.
var ErrOutOfBounds = errors.New("grid: access out of bounds")

// Grid is the backing store for one generation run. Cells are stored in
// row-major order with index = y*Stride + x, every cell holding exactly one
// tile code. Owned exclusively by the run that created it.
type Grid struct {
	h     int
	cells []tiles.Tile
}

// New creates a buffer of the given height with every cell set to fill.
// The height must accommodate at least one visible window.
func New(h int, fill tiles.Tile) (*Grid, error) {
	if h < VisibleH {
		return nil, fmt.Errorf("grid: height %d below visible window height %d: %w",
			h, VisibleH, ErrOutOfBounds)
	}
	g := &Grid{
		h:     h,
		cells: make([]tiles.Tile, Stride*h),
	}
	g.Fill(fill)
	return g, nil
}

// Height returns the buffer height in rows.
func (g *Grid) Height() int {
	return g.h
}

// Fill sets every cell to the given code.
func (g *Grid) Fill(t tiles.Tile) {
	for i := range g.cells {
		g.cells[i] = t
	}
}

func (g *Grid) index(x, y int) int {
	return y*Stride + x
}

// InBounds reports whether (x, y) addresses a backing cell.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < Stride && y >= 0 && y < g.h
}

// Get returns the code at (x, y).
func (g *Grid) Get(x, y int) (tiles.Tile, error) {
	if !g.InBounds(x, y) {
		return 0, fmt.Errorf("grid: get (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return g.cells[g.index(x, y)], nil
}

// Set writes the code at (x, y).
func (g *Grid) Set(x, y int, t tiles.Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("grid: set (%d,%d): %w", x, y, ErrOutOfBounds)
	}
	g.cells[g.index(x, y)] = t
	return nil
}

// VisibleWindow returns the 20x12 sub-rectangle starting at rowOffset as a
// freshly allocated row-major matrix. The window is never clamped: an
// offset that would run past the buffer is an error.
func (g *Grid) VisibleWindow(rowOffset int) ([][]tiles.Tile, error) {
	if rowOffset < 0 || rowOffset+VisibleH > g.h {
		return nil, fmt.Errorf("grid: window at row %d exceeds height %d: %w",
			rowOffset, g.h, ErrOutOfBounds)
	}
	out := make([][]tiles.Tile, VisibleH)
	for y := 0; y < VisibleH; y++ {
		row := make([]tiles.Tile, VisibleW)
		copy(row, g.cells[g.index(0, rowOffset+y):g.index(VisibleW, rowOffset+y)])
		out[y] = row
	}
	return out, nil
}

// Clone returns a deep copy of the buffer.
func (g *Grid) Clone() *Grid {
	cells := make([]tiles.Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{h: g.h, cells: cells}
}

// Equal reports whether two buffers have identical dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
