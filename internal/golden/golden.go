// Package golden reads and writes the reference grid format: tab-separated
// numeric tile codes, one grid row per line. External harnesses diff this
// byte for byte, so Encode must serialize identically to the recorded
// references, tab joins and trailing newline included.
package golden

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/happyweed/internal/tiles"
)

// Encode serializes a window to TSV.
func Encode(rows [][]tiles.Tile) []byte {
	var b bytes.Buffer
	for _, row := range rows {
		for x, t := range row {
			if x > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(strconv.Itoa(int(t)))
		}
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// Decode parses TSV back into rows of tile codes. Blank lines are skipped,
// matching the reference reader.
func Decode(data []byte) ([][]tiles.Tile, error) {
	var rows [][]tiles.Tile
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		row := make([]tiles.Tile, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("golden: line %d field %d: %w", i+1, j+1, err)
			}
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("golden: line %d field %d: code %d out of range", i+1, j+1, v)
			}
			row[j] = tiles.Tile(v)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Mismatch describes the first difference between two windows: either a
// cell with different codes, or a shape divergence.
type Mismatch struct {
	X, Y int
	A, B tiles.Tile

	shape string // non-empty for a row-count or row-length difference
}

func (m Mismatch) String() string {
	if m.shape != "" {
		return m.shape
	}
	return fmt.Sprintf("cell (%d,%d): %d != %d", m.X, m.Y, m.A, m.B)
}

// Diff returns the first cell where two windows differ, or ok=false when
// they are identical. A shape difference is reported with the differing
// row counts or row lengths instead of a cell pair.
func Diff(a, b [][]tiles.Tile) (Mismatch, bool) {
	for y := 0; y < len(a) || y < len(b); y++ {
		if y >= len(a) || y >= len(b) {
			return Mismatch{
				Y:     y,
				shape: fmt.Sprintf("row count: %d != %d", len(a), len(b)),
			}, true
		}
		for x := 0; x < len(a[y]) || x < len(b[y]); x++ {
			if x >= len(a[y]) || x >= len(b[y]) {
				return Mismatch{
					X: x, Y: y,
					shape: fmt.Sprintf("row %d length: %d != %d", y, len(a[y]), len(b[y])),
				}, true
			}
			if a[y][x] != b[y][x] {
				return Mismatch{X: x, Y: y, A: a[y][x], B: b[y][x]}, true
			}
		}
	}
	return Mismatch{}, false
}
