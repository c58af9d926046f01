// Package storage keeps a SQLite history of headless level runs.
// It uses the pure-Go modernc.org/sqlite driver so no CGO is needed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/core"
)

// Store wraps the run history database.
type Store struct {
	db *sql.DB
}

// Run is one recorded replay of a level.
type Run struct {
	ID          string
	Level       string
	Script      string
	Ticks       int
	Finished    bool
	PlayerSaved bool
	Children    []core.ChildType
	Moves       int
	Score       int
	CreatedAt   time.Time
}

// Open creates or opens the database at dbPath, creating parent
// directories and running migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

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

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			level TEXT NOT NULL,
			script TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL,
			finished INTEGER NOT NULL,
			player_saved INTEGER NOT NULL,
			children TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(level, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun inserts r. A missing ID or CreatedAt is filled in and the
// stored run is returned.
func (s *Store) RecordRun(r Run) (Run, error) {
	if r.Level == "" {
		return Run{}, fmt.Errorf("storage: run has no level")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Millisecond)

	_, err := s.db.Exec(
		`INSERT INTO runs (id, level, script, ticks, finished, player_saved, children, moves, score, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Level, r.Script, r.Ticks, r.Finished, r.PlayerSaved,
		encodeChildren(r.Children), r.Moves, r.Score, r.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot record run: %w", err)
	}
	return r, nil
}

// RecentRuns returns the newest runs, all levels when level is empty.
func (s *Store) RecentRuns(level string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, level, script, ticks, finished, player_saved, children, moves, score, created_at
		 FROM runs`
	args := []any{}
	if level != "" {
		query += " WHERE level = ?"
		args = append(args, level)
	}
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r        Run
			children string
			created  int64
		)
		if err := rows.Scan(&r.ID, &r.Level, &r.Script, &r.Ticks, &r.Finished, &r.PlayerSaved,
			&children, &r.Moves, &r.Score, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Children = decodeChildren(children)
		r.CreatedAt = time.UnixMilli(created).UTC()
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestScore returns the highest recorded score for level, or 0.
func (s *Store) BestScore(level string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs WHERE level = ?", level).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

func encodeChildren(types []core.ChildType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Short()
	}
	return strings.Join(names, ",")
}

func decodeChildren(s string) []core.ChildType {
	if s == "" {
		return nil
	}
	var types []core.ChildType
	for _, name := range strings.Split(s, ",") {
		if t, err := core.ParseChildType(name); err == nil {
			types = append(types, t)
		}
	}
	return types
}
