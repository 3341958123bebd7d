// Package tui provides the Bubble Tea level browser, runnable locally or
// over SSH via Wish.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/happyweed/internal/mapgen"
	"github.com/vovakirdan/happyweed/internal/rng"
	"github.com/vovakirdan/happyweed/internal/tiles"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Browser is the Bubble Tea model for paging through generated levels.
type Browser struct {
	set   int
	level int

	raw   bool
	color bool

	win      [][]tiles.Tile
	seed     int32
	steps    int
	loadErr  error
	quitting bool
}

// NewBrowser creates a browser opened at the given set and level.
func NewBrowser(set, level int, color bool) Browser {
	b := Browser{set: set, level: level, color: color}
	b.clampAndLoad()
	return b
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// clampAndLoad keeps the pair in range and regenerates the window.
func (b *Browser) clampAndLoad() {
	if b.set < rng.MinSet {
		b.set = rng.MinSet
	}
	if b.set > rng.MaxSet {
		b.set = rng.MaxSet
	}
	if b.level < rng.MinLevel {
		b.level = rng.MinLevel
	}
	if b.level > rng.MaxLevel {
		b.level = rng.MaxLevel
	}

	res, err := mapgen.Generate(b.set, b.level)
	if err != nil {
		b.win, b.loadErr = nil, err
		return
	}
	win, err := res.Window()
	if err != nil {
		b.win, b.loadErr = nil, err
		return
	}
	b.win, b.seed, b.steps, b.loadErr = win, res.Seed, res.Steps, nil
}

// Update handles key input.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		b.quitting = true
		return b, tea.Quit
	case "right", "l":
		b.level++
	case "left", "h":
		b.level--
	case "up", "k":
		b.set++
	case "down", "j":
		b.set--
	case "pgup":
		b.set += 10
	case "pgdown":
		b.set -= 10
	case "r":
		b.raw = !b.raw
		return b, nil
	default:
		return b, nil
	}

	b.clampAndLoad()
	return b, nil
}

// View renders the header, the playfield and the key help line.
func (b Browser) View() string {
	if b.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("happyweed  set %d  level %d", b.set, b.level)))
	sb.WriteRune('\n')

	if b.loadErr != nil {
		sb.WriteString(errorStyle.Render(fmt.Sprintf("generation failed: %v", b.loadErr)))
		sb.WriteRune('\n')
	} else {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("seed %d  carve steps %d", b.seed, b.steps)))
		sb.WriteString("\n\n")
		if b.raw {
			sb.WriteString(RenderRaw(b.win))
		} else {
			sb.WriteString(RenderWindow(b.win, b.level, b.color))
		}
		sb.WriteRune('\n')
	}

	sb.WriteRune('\n')
	sb.WriteString(statusStyle.Render("←/→ level  ↑/↓ set  pgup/pgdn set ±10  r raw codes  q quit"))
	return sb.String()
}

// Run starts the browser in the local terminal.
func Run(set, level int, color bool) error {
	p := tea.NewProgram(NewBrowser(set, level, color), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
