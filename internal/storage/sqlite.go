// Package storage provides SQLite-based persistence for saved camera poses
// (waypoints) and play-session statistics.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-raycaster/internal/core"
)

// ErrNotFound is returned when a waypoint ID does not exist.
var ErrNotFound = errors.New("storage: not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Waypoint is a saved camera pose on a level.
type Waypoint struct {
	ID        int64
	LevelID   string
	Name      string
	Camera    core.Camera
	CreatedAt time.Time
}

// Session is one finished viewing session.
type Session struct {
	ID        int64
	LevelID   string
	Ticks     int
	Distance  float64 // world units walked
	CreatedAt time.Time
}

// LevelStats aggregates the sessions of one level.
type LevelStats struct {
	LevelID       string
	Sessions      int
	TotalTicks    int64
	TotalDistance float64
	Waypoints     int
	LastPlayed    time.Time
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
		CREATE TABLE IF NOT EXISTS waypoints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			x REAL NOT NULL,
			y REAL NOT NULL,
			angle REAL NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_waypoints_level_id ON waypoints(level_id);

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			ticks INTEGER NOT NULL,
			distance REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_level_id ON sessions(level_id);
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

// SaveWaypoint stores a camera pose for a level.
// Returns the ID of the inserted record.
func (s *Store) SaveWaypoint(levelID, name string, cam core.Camera) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO waypoints (level_id, name, x, y, angle) VALUES (?, ?, ?, ?, ?)",
		levelID, name, cam.Position.X, cam.Position.Y, cam.Angle,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save waypoint: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Waypoints returns every waypoint of a level in the order they were saved.
func (s *Store) Waypoints(levelID string) ([]Waypoint, error) {
	rows, err := s.db.Query(
		`SELECT id, level_id, name, x, y, angle, created_at
		 FROM waypoints
		 WHERE level_id = ?
		 ORDER BY id ASC`,
		levelID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query waypoints: %w", err)
	}
	defer rows.Close()

	var entries []Waypoint
	for rows.Next() {
		var w Waypoint
		var createdAt any
		if err := rows.Scan(&w.ID, &w.LevelID, &w.Name,
			&w.Camera.Position.X, &w.Camera.Position.Y, &w.Camera.Angle, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		w.CreatedAt = parseTime(createdAt)
		entries = append(entries, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DeleteWaypoint removes one waypoint.
func (s *Store) DeleteWaypoint(id int64) error {
	res, err := s.db.Exec("DELETE FROM waypoints WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete waypoint: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete waypoint: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: waypoint %d", ErrNotFound, id)
	}
	return nil
}

// ClearWaypoints deletes all waypoints of a level.
func (s *Store) ClearWaypoints(levelID string) error {
	_, err := s.db.Exec("DELETE FROM waypoints WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear waypoints: %w", err)
	}
	return nil
}

// SaveSession records a finished session.
func (s *Store) SaveSession(levelID string, ticks int, distance float64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (level_id, ticks, distance) VALUES (?, ?, ?)",
		levelID, ticks, distance,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentSessions returns the latest sessions across all levels.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, ticks, distance, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var ss Session
		var createdAt any
		if err := rows.Scan(&ss.ID, &ss.LevelID, &ss.Ticks, &ss.Distance, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ss.CreatedAt = parseTime(createdAt)
		sessions = append(sessions, ss)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(ticks), 0), COALESCE(SUM(distance), 0), MAX(created_at)
		 FROM sessions WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Sessions, &stats.TotalTicks, &stats.TotalDistance, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	err = s.db.QueryRow(
		"SELECT COUNT(*) FROM waypoints WHERE level_id = ?",
		levelID,
	).Scan(&stats.Waypoints)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count waypoints: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and the SQLite text timestamp format.
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
