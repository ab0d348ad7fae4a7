// Package scores keeps local score tables for games built on arcade-tools.
// Persistence is SQLite through the pure-Go modernc.org/sqlite driver, so
// consuming games stay free of CGO.
package scores

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/segmentio/ksuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/jhayduk/arcade-tools/internal/paths"
)

// DefaultPath is where Open puts the database when the game does not pick
// its own location.
const DefaultPath = "~/.arcade-tools/scores.db"

var logger = log.New(io.Discard)

// SetLogger routes the package's debug logging to l. The default logger
// discards everything, so games that do not care never see output.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Store manages the SQLite database connection for score persistence.
// The zero value is not usable; construct with Open.
type Store struct {
	db *sql.DB
}

// Entry is a single recorded score. Ref is a globally unique identifier
// assigned on save, which lets score tables exported from different machines
// merge without duplicates.
type Entry struct {
	ID        int64
	Ref       string
	GameID    string
	Player    string
	Score     int
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for one game's score table.
type GameStats struct {
	GameID     string
	Plays      int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens the score database at the given path; pass
// DefaultPath unless the game needs its own location. A leading ~ is
// expanded, parent directories are created, and the schema is migrated.
func Open(path string) (*Store, error) {
	path, err := paths.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("scores: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}

	logger.Debug("score database ready", "path", path)
	return store, nil
}

// migrate creates the database schema if it doesn't exist. Timestamps are
// stored as unix seconds so values round-trip exactly through CSV exchange.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			ref TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
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

// SaveScore records a score for the given game and returns the stored entry.
// The player name may be empty.
func (s *Store) SaveScore(gameID, player string, score int) (Entry, error) {
	e := Entry{
		Ref:       ksuid.New().String(),
		GameID:    gameID,
		Player:    player,
		Score:     score,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (ref, game_id, player, score, created_at) VALUES (?, ?, ?, ?, ?)",
		e.Ref, e.GameID, e.Player, e.Score, e.CreatedAt.Unix(),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("scores: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("scores: cannot get inserted ID: %w", err)
	}
	e.ID = id

	return e, nil
}

// TopScores retrieves the best scores for the given game, best first, with
// ties broken by age (earlier run ranks higher). A non-positive limit
// defaults to 10.
func (s *Store) TopScores(gameID string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	return s.queryEntries(
		`SELECT id, ref, game_id, player, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

// AllScores retrieves every score for the given game, best first.
func (s *Store) AllScores(gameID string) ([]Entry, error) {
	return s.queryEntries(
		`SELECT id, ref, game_id, player, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, created_at ASC`,
		gameID,
	)
}

func (s *Store) queryEntries(query string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.Ref, &e.GameID, &e.Player, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("scores: cannot scan row: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0).UTC()
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("scores: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("scores: cannot clear scores: %w", err)
	}
	return nil
}

// Stats aggregates the score table for a single game. A game with no scores
// yields zero stats, not an error.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Plays, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot get game stats: %w", err)
	}

	if lastPlayed.Valid {
		stats.LastPlayed = time.Unix(lastPlayed.Int64, 0).UTC()
	}

	return stats, nil
}

// AllStats aggregates every game that has at least one recorded score,
// ordered by game id.
func (s *Store) AllStats() ([]GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id
		 ORDER BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: cannot get stats: %w", err)
	}
	defer rows.Close()

	var all []GameStats
	for rows.Next() {
		var st GameStats
		var lastPlayed int64
		if err := rows.Scan(&st.GameID, &st.Plays, &st.HighScore, &st.AvgScore, &st.TotalScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("scores: cannot scan stats row: %w", err)
		}
		st.LastPlayed = time.Unix(lastPlayed, 0).UTC()
		all = append(all, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: row iteration error: %w", err)
	}

	return all, nil
}
