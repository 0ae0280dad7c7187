// Package storage persists high score, level progress, settings and the
// score history. The sqlite backend uses the pure-Go modernc.org/sqlite
// driver to avoid CGO dependencies; FileStore keeps the same values in
// plain text files.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64
	Level     int
	Score     int
	Completed bool
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	Level      int
	Runs       int
	Clears     int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

var _ Persistence = (*Store)(nil)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
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
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level INTEGER NOT NULL,
			score INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_level ON scores(level);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(level, score DESC);
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

func (s *Store) get(key string) (string, error) {
	var v string
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return v, nil
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

func (s *Store) getInt(key string) (int, error) {
	v, err := s.get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &ParseError{Key: key, Value: v, Err: err}
	}
	return n, nil
}

// HighScore returns the stored high score.
func (s *Store) HighScore() (int, error) {
	return s.getInt(keyHighScore)
}

// SaveHighScore overwrites the stored high score.
func (s *Store) SaveHighScore(score int) error {
	return s.put(keyHighScore, strconv.Itoa(score))
}

// UnlockedLevel returns the highest unlocked level.
func (s *Store) UnlockedLevel() (int, error) {
	return s.getInt(keyProgress)
}

// SaveUnlockedLevel overwrites the highest unlocked level.
func (s *Store) SaveUnlockedLevel(level int) error {
	return s.put(keyProgress, strconv.Itoa(level))
}

// Settings returns the stored settings. Keys that were never written keep
// their defaults; ErrNotFound is returned only when no setting exists.
func (s *Store) Settings() (Settings, error) {
	st := DefaultSettings()
	found := false

	if v, err := s.get(keyVolume); err == nil {
		f, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return DefaultSettings(), &ParseError{Key: keyVolume, Value: v, Err: perr}
		}
		st.Volume = f
		found = true
	} else if !errors.Is(err, ErrNotFound) {
		return DefaultSettings(), err
	}

	if v, err := s.get(keyShowFPS); err == nil {
		b, perr := parseFlag(v)
		if perr != nil {
			return DefaultSettings(), &ParseError{Key: keyShowFPS, Value: v, Err: perr}
		}
		st.ShowFPS = b
		found = true
	} else if !errors.Is(err, ErrNotFound) {
		return DefaultSettings(), err
	}

	if !found {
		return st, ErrNotFound
	}
	return st, nil
}

// SaveSettings stores both settings.
func (s *Store) SaveSettings(st Settings) error {
	if err := s.put(keyVolume, formatVolume(st.Volume)); err != nil {
		return err
	}
	return s.put(keyShowFPS, formatFlag(st.ShowFPS))
}

// SaveScore records a finished run on a level.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(level, score int, completed bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (level, score, completed) VALUES (?, ?, ?)",
		level, score, completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for a level, or for all levels when
// level is 0. Results are ordered by score descending.
func (s *Store) TopScores(level, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, score, completed, created_at
		 FROM scores
		 WHERE ? = 0 OR level = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		level, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Level, &e.Score, &e.Completed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearScores removes the history of a level, or all history when level is 0.
func (s *Store) ClearScores(level int) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE ? = 0 OR level = ?", level, level)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// AllLevelStats retrieves statistics for every level that has been played,
// ordered by level.
func (s *Store) AllLevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level, COUNT(*), SUM(completed), MAX(score), AVG(score), MAX(created_at)
		 FROM scores
		 GROUP BY level
		 ORDER BY level`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.Level, &st.Runs, &st.Clears, &st.HighScore, &st.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
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
