package game

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ScoreDB keeps a local record of finished games. It stores results only,
// never in-progress state: there is no save game to resume.
type ScoreDB struct {
	db *sql.DB
}

// OpenScoreDB opens (creating if needed) the results database at path.
func OpenScoreDB(path string) (*ScoreDB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create score dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open score db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		played_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		result TEXT NOT NULL,
		length INTEGER NOT NULL,
		win_length INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}

	return &ScoreDB{db: db}, nil
}

// Record inserts one finished game.
func (s *ScoreDB) Record(res Result, length, winLength int, d time.Duration) error {
	_, err := s.db.Exec(
		`INSERT INTO results (result, length, win_length, duration_ms) VALUES (?, ?, ?, ?)`,
		res.String(), length, winLength, d.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	return nil
}

// ScoreRow is one leaderboard entry.
type ScoreRow struct {
	Result     string
	Length     int
	WinLength  int
	DurationMS int64
}

// Top returns the best finished games, longest snake first.
func (s *ScoreDB) Top(limit int) ([]ScoreRow, error) {
	rows, err := s.db.Query(
		`SELECT result, length, win_length, duration_ms FROM results
		 ORDER BY length DESC, duration_ms ASC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query top results: %w", err)
	}
	defer rows.Close()

	var out []ScoreRow
	for rows.Next() {
		var r ScoreRow
		if err := rows.Scan(&r.Result, &r.Length, &r.WinLength, &r.DurationMS); err != nil {
			return nil, fmt.Errorf("scan result row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *ScoreDB) Close() error {
	return s.db.Close()
}
