package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/happyweed/internal/golden"
	"github.com/vovakirdan/happyweed/internal/mapgen"
	"github.com/vovakirdan/happyweed/internal/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <set>",
	Short: "Regenerate a set and diff against stored checksums",
	Long: `Regenerate every stored level of a set and compare the result
against the recorded run. Reports the first differing cell of any
mismatching level. Exits non-zero when a level diverges.

Examples:
  happyweed verify 41`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func runVerify(_ *cobra.Command, args []string) error {
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

	records, err := store.RunsForSet(set)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no stored runs for set %d; run 'happyweed batch %d' first", set, set)
	}

	failed := 0
	for _, rec := range records {
		res, err := mapgen.Generate(rec.Set, rec.Level)
		if err != nil {
			return fmt.Errorf("level %d: %w", rec.Level, err)
		}
		win, err := res.Window()
		if err != nil {
			return fmt.Errorf("level %d: %w", rec.Level, err)
		}
		data := golden.Encode(win)

		if storage.Checksum(data) == rec.Checksum {
			fmt.Printf("set %d level %2d  ok  %s\n", rec.Set, rec.Level, rec.Checksum)
			continue
		}

		failed++
		stored, err := golden.Decode(rec.TSV)
		if err != nil {
			fmt.Printf("set %d level %2d  FAIL  stored run unreadable: %v\n", rec.Set, rec.Level, err)
			continue
		}
		if m, bad := golden.Diff(win, stored); bad {
			fmt.Printf("set %d level %2d  FAIL  %s\n", rec.Set, rec.Level, m)
		} else {
			fmt.Printf("set %d level %2d  FAIL  checksum mismatch\n", rec.Set, rec.Level)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels diverged", failed, len(records))
	}
	fmt.Printf("all %d levels reproduced\n", len(records))
	return nil
}
