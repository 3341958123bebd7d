// Package storage provides SQLite-based persistence for generated level
// runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord is one persisted generation run: the inputs, the derived
// seed, the serialized window and its checksum.
type RunRecord struct {
	ID        int64
	Set       int
	Level     int
	Seed      int32
	Checksum  string
	TSV       []byte
	CreatedAt time.Time
}

// Checksum returns the FNV-1a digest of a serialized window, printed the
// way the database stores it.
func Checksum(tsv []byte) string {
	h := fnv.New32a()
	h.Write(tsv)
	return fmt.Sprintf("%08x", h.Sum32())
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			set_num INTEGER NOT NULL,
			level INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			checksum TEXT NOT NULL,
			tsv BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(set_num, level)
		);
		CREATE INDEX IF NOT EXISTS idx_runs_set ON runs(set_num);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a generation run, replacing any earlier record for the
// same (set, level) pair. Generation is deterministic, so a replace only
// ever rewrites identical content. Returns the ID of the stored record.
func (s *Store) SaveRun(set, level int, seed int32, tsv []byte) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (set_num, level, seed, checksum, tsv)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(set_num, level) DO UPDATE SET
		   seed = excluded.seed,
		   checksum = excluded.checksum,
		   tsv = excluded.tsv`,
		set, level, seed, Checksum(tsv), tsv,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RunFor retrieves the stored run for a (set, level) pair.
// Returns nil with no error when none is stored.
func (s *Store) RunFor(set, level int) (*RunRecord, error) {
	var r RunRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, set_num, level, seed, checksum, tsv, created_at
		 FROM runs
		 WHERE set_num = ? AND level = ?`,
		set, level,
	).Scan(&r.ID, &r.Set, &r.Level, &r.Seed, &r.Checksum, &r.TSV, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.CreatedAt = parseTimestamp(createdAt)
	return &r, nil
}

// RunsForSet retrieves every stored run of a set, ordered by level.
func (s *Store) RunsForSet(set int) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, set_num, level, seed, checksum, tsv, created_at
		 FROM runs
		 WHERE set_num = ?
		 ORDER BY level`,
		set,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Set, &r.Level, &r.Seed, &r.Checksum, &r.TSV, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// StoredChecksum returns the checksum recorded for a (set, level) pair,
// or empty when none is stored.
func (s *Store) StoredChecksum(set, level int) (string, error) {
	var sum string
	err := s.db.QueryRow(
		"SELECT checksum FROM runs WHERE set_num = ? AND level = ?",
		set, level,
	).Scan(&sum)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query checksum: %w", err)
	}
	return sum, nil
}

// ClearSet deletes every stored run of the given set.
func (s *Store) ClearSet(set int) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE set_num = ?", set)
	if err != nil {
		return fmt.Errorf("storage: cannot clear set: %w", err)
	}
	return nil
}

// parseTimestamp handles both time.Time and string datetime columns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
