package scores

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/segmentio/ksuid"
)

// scoreRecord is the row shape of score exchange files. Timestamps travel as
// RFC 3339 text so files stay readable and merge across time zones.
type scoreRecord struct {
	Ref       string `csv:"ref"`
	GameID    string `csv:"game_id"`
	Player    string `csv:"player"`
	Score     int    `csv:"score"`
	CreatedAt string `csv:"created_at"`
}

// ExportCSV writes every score for the given game to w, best first, with a
// header row. The output of an empty table is just the header.
func (s *Store) ExportCSV(w io.Writer, gameID string) error {
	entries, err := s.AllScores(gameID)
	if err != nil {
		return err
	}

	records := make([]scoreRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, scoreRecord{
			Ref:       e.Ref,
			GameID:    e.GameID,
			Player:    e.Player,
			Score:     e.Score,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("scores: cannot write csv: %w", err)
	}

	logger.Debug("csv export finished", "game", gameID, "rows", len(records))
	return nil
}

// ImportCSV reads score rows from r and inserts the ones whose ref is not in
// the store yet. Rows without a ref get a fresh one, so hand-written files
// load cleanly; rows without a timestamp are stamped with the current time.
// Returns the number of rows actually added.
func (s *Store) ImportCSV(r io.Reader) (int, error) {
	var records []scoreRecord
	if err := gocsv.Unmarshal(r, &records); err != nil {
		return 0, fmt.Errorf("scores: cannot read csv: %w", err)
	}

	added := 0
	for _, rec := range records {
		ref := rec.Ref
		if ref == "" {
			ref = ksuid.New().String()
		}

		createdAt := time.Now().UTC()
		if rec.CreatedAt != "" {
			parsed, err := time.Parse(time.RFC3339, rec.CreatedAt)
			if err != nil {
				return added, fmt.Errorf("scores: cannot parse timestamp %q: %w", rec.CreatedAt, err)
			}
			createdAt = parsed
		}

		result, err := s.db.Exec(
			`INSERT OR IGNORE INTO scores (ref, game_id, player, score, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			ref, rec.GameID, rec.Player, rec.Score, createdAt.Unix(),
		)
		if err != nil {
			return added, fmt.Errorf("scores: cannot import row: %w", err)
		}

		n, err := result.RowsAffected()
		if err != nil {
			return added, fmt.Errorf("scores: cannot count imported rows: %w", err)
		}
		added += int(n)
	}

	logger.Debug("csv import finished", "rows", len(records), "added", added)
	return added, nil
}
