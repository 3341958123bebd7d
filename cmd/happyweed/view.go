package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/happyweed/internal/platform/tui"
	"github.com/vovakirdan/happyweed/internal/rng"
)

var flagViewNoColor bool

var viewCmd = &cobra.Command{
	Use:   "view [set] [level]",
	Short: "Browse levels interactively",
	Long: `Open the terminal browser. Arrow keys move between levels and
sets, r toggles raw tile codes, q quits.

Examples:
  happyweed view
  happyweed view 41 1
  happyweed view 41 1 --no-color`,
	Args: cobra.MaximumNArgs(2),
	RunE: runView,
}

func init() {
	viewCmd.Flags().BoolVar(&flagViewNoColor, "no-color", false, "Disable styled output")
}

func runView(_ *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("view needs a terminal; use 'happyweed dump' for piped output")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	set, level := cfg.Generator.DefaultSet, rng.MinLevel
	if set < rng.MinSet {
		set = rng.MinSet
	}
	if len(args) == 2 {
		if set, level, err = parsePair(args); err != nil {
			return err
		}
	} else if len(args) == 1 {
		if set, level, err = parsePair([]string{args[0], "1"}); err != nil {
			return err
		}
	}

	color := cfg.Render.Color && !flagViewNoColor
	return tui.Run(set, level, color)
}
