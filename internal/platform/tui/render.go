package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/happyweed/internal/tiles"
)

// kindStyles maps tile kinds to lipgloss styles.
var kindStyles = map[tiles.Kind]lipgloss.Style{
	tiles.KindDigit: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	tiles.KindActor: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	tiles.KindOpen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	tiles.KindExit:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	tiles.KindWall:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	tiles.KindSuper: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	tiles.KindJail:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
}

// glyph picks the display rune for a tile.
func glyph(t tiles.Tile, level int) rune {
	switch tiles.Classify(t, level) {
	case tiles.KindDigit:
		return rune('0' + int(t)%10)
	case tiles.KindActor:
		if t == tiles.Player {
			return '@'
		}
		return 'C'
	case tiles.KindExit:
		return '>'
	case tiles.KindWall:
		return '#'
	case tiles.KindSuper:
		return '*'
	case tiles.KindJail:
		return '+'
	default:
		if t == tiles.Leaf {
			return '.'
		}
		return ' '
	}
}

// RenderWindow converts a playfield window to a styled string.
// Groups adjacent cells with the same style to minimize ANSI escape
// sequences, and falls back to plain glyphs when color is off.
func RenderWindow(win [][]tiles.Tile, level int, color bool) string {
	var sb strings.Builder
	if len(win) > 0 {
		sb.Grow(len(win) * (len(win[0]) + 1) * 2)
	}

	for y, row := range win {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < len(row) {
			startKind := tiles.Classify(row[x], level)

			var run strings.Builder
			for x < len(row) && tiles.Classify(row[x], level) == startKind {
				run.WriteRune(glyph(row[x], level))
				x++
			}

			if !color {
				sb.WriteString(run.String())
				continue
			}
			if style, ok := kindStyles[startKind]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}

	return sb.String()
}

// RenderRaw prints the window as space-padded numeric tile codes, the
// format used when inspecting exact values.
func RenderRaw(win [][]tiles.Tile) string {
	var sb strings.Builder
	for y, row := range win {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x, t := range row {
			if x > 0 {
				sb.WriteRune(' ')
			}
			fmt.Fprintf(&sb, "%3d", t)
		}
	}
	return sb.String()
}
