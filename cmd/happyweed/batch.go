package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/happyweed/internal/golden"
	"github.com/vovakirdan/happyweed/internal/mapgen"
	"github.com/vovakirdan/happyweed/internal/rng"
	"github.com/vovakirdan/happyweed/internal/storage"
)

var flagBatchDir string

var batchCmd = &cobra.Command{
	Use:   "batch <set>",
	Short: "Generate a whole set and store the runs",
	Long: `Generate every level of a set, record each run in the database
and optionally write the windows out as TSV files.

Examples:
  happyweed batch 41
  happyweed batch 41 --dir ./out       # also write set41-level01.tsv etc.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&flagBatchDir, "dir", "", "Directory to write TSV files to")
}

func runBatch(_ *cobra.Command, args []string) error {
	set, _, err := parsePair([]string{args[0], "1"})
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	outDir := flagBatchDir
	if outDir == "" {
		outDir = cfg.Storage.GoldensDir
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "happyweed"})

	for level := rng.MinLevel; level <= rng.MaxLevel; level++ {
		res, err := mapgen.Generate(set, level)
		if err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		win, err := res.Window()
		if err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		data := golden.Encode(win)

		if _, err := store.SaveRun(set, level, res.Seed, data); err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		if outDir != "" {
			name := fmt.Sprintf("set%d-level%02d.tsv", set, level)
			if err := os.WriteFile(filepath.Join(outDir, name), data, 0o644); err != nil {
				return fmt.Errorf("level %d: %w", level, err)
			}
		}
		logger.Info("generated",
			"set", set,
			"level", level,
			"seed", res.Seed,
			"checksum", storage.Checksum(data),
		)
	}
	return nil
}
