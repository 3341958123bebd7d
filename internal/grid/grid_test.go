package grid

import (
	"errors"
	"testing"

	"github.com/vovakirdan/happyweed/internal/tiles"
)

func TestNewFillsEveryCell(t *testing.T) {
	g, err := New(VisibleH, 201)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < Stride; x++ {
			got, err := g.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d,%d) failed: %v", x, y, err)
			}
			if got != 201 {
				t.Fatalf("cell (%d,%d) = %d, want 201", x, y, got)
			}
		}
	}
}

func TestNewRejectsShortBuffer(t *testing.T) {
	if _, err := New(VisibleH-1, 201); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("New(11): got %v, want ErrOutOfBounds", err)
	}
}

func TestBoundsChecks(t *testing.T) {
	g, err := New(VisibleH, 201)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for _, tt := range []struct{ x, y int }{
		{-1, 0}, {0, -1}, {Stride, 0}, {0, VisibleH}, {Stride, VisibleH},
	} {
		if err := g.Set(tt.x, tt.y, 80); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d): got %v, want ErrOutOfBounds", tt.x, tt.y, err)
		}
		if _, err := g.Get(tt.x, tt.y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d,%d): got %v, want ErrOutOfBounds", tt.x, tt.y, err)
		}
	}

	// Columns beyond the visible window but inside the backing stride are
	// valid cells.
	if err := g.Set(VisibleW, 0, 80); err != nil {
		t.Errorf("Set in backing margin failed: %v", err)
	}
}

func TestVisibleWindow(t *testing.T) {
	g, err := New(VisibleH+4, 201)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := g.Set(0, 4, 80); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := g.Set(VisibleW-1, 4+VisibleH-1, 241); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// A write in the backing margin must not leak into the window.
	if err := g.Set(VisibleW, 4, 99); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	win, err := g.VisibleWindow(4)
	if err != nil {
		t.Fatalf("VisibleWindow(4) failed: %v", err)
	}
	if len(win) != VisibleH || len(win[0]) != VisibleW {
		t.Fatalf("window is %dx%d, want %dx%d", len(win[0]), len(win), VisibleW, VisibleH)
	}
	if win[0][0] != 80 {
		t.Errorf("window[0][0] = %d, want 80", win[0][0])
	}
	if win[VisibleH-1][VisibleW-1] != 241 {
		t.Errorf("window BR = %d, want 241", win[VisibleH-1][VisibleW-1])
	}
	for y := range win {
		for x := range win[y] {
			if win[y][x] == 99 {
				t.Fatalf("backing margin leaked into window at (%d,%d)", x, y)
			}
		}
	}
}

func TestVisibleWindowOffsetErrors(t *testing.T) {
	g, err := New(VisibleH, 201)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for _, off := range []int{-1, 1, VisibleH} {
		if _, err := g.VisibleWindow(off); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("VisibleWindow(%d): got %v, want ErrOutOfBounds", off, err)
		}
	}
	if _, err := g.VisibleWindow(0); err != nil {
		t.Errorf("VisibleWindow(0) failed: %v", err)
	}
}

func TestCloneAndEqual(t *testing.T) {
	g, err := New(VisibleH, 201)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if err := g.Set(3, 3, tiles.Leaf); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone differs from original")
	}

	// Mutating the clone must not affect the original.
	if err := c.Set(3, 3, tiles.Exit); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if g.Equal(c) {
		t.Fatal("grids equal after diverging write")
	}
	got, _ := g.Get(3, 3)
	if got != tiles.Leaf {
		t.Errorf("original mutated through clone: got %d", got)
	}
}
