// happyweed generates and inspects the deterministic levels of the
// classic maze-chase game, reproducing the original engine bit for bit.
//
// Usage:
//
//	happyweed dump <set> <level>   - Print a level as tab-separated tile codes
//	happyweed view [set] [level]   - Browse levels interactively
//	happyweed batch <set>          - Generate a whole set and store it
//	happyweed verify <set>         - Regenerate a set and diff against storage
//	happyweed serve                - Start SSH server for remote browsing
//
// Global flags:
//
//	--config <path> - Config file (default: search order, then embedded)
//	--db <path>     - Run database path (default: ~/.happyweed/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happyweed/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "happyweed",
	Short: "Deterministic level generator for the classic maze-chase game",
	Long: `happyweed rebuilds the level generator of the original 1993 game.
Every level of every set is derived from a closed-form seed, so the
same (set, level) pair always produces the same playfield.

Available commands:
  dump     - Print one level as tab-separated tile codes
  view     - Browse levels interactively in the terminal
  batch    - Generate a whole set and store the runs
  verify   - Regenerate a set and diff against stored checksums
  serve    - Start SSH server for remote browsing

Examples:
  happyweed dump 41 1
  happyweed view 41 1
  happyweed batch 41
  happyweed verify 41
  happyweed serve --ssh :2223`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run database (default ~/.happyweed/runs.db)")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration from the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}

// parsePair parses positional set and level arguments.
func parsePair(args []string) (set, level int, err error) {
	if _, err := fmt.Sscanf(args[0], "%d", &set); err != nil {
		return 0, 0, fmt.Errorf("invalid set %q", args[0])
	}
	if _, err := fmt.Sscanf(args[1], "%d", &level); err != nil {
		return 0, 0, fmt.Errorf("invalid level %q", args[1])
	}
	return set, level, nil
}
