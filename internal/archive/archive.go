// Package archive persists deal summaries to SQLite. It sits entirely
// outside the deal engine: the engine keeps its own capped in-memory
// history, and archive failures must never abort a live deal. Callers log
// them and move on.
package archive

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lox/sevenstud/internal/game"
)

const createSummariesTableSQL = `
CREATE TABLE IF NOT EXISTS deal_summaries (
	deal_id TEXT PRIMARY KEY,
	variant TEXT NOT NULL,
	started_at TIMESTAMP NOT NULL,
	ended_at TIMESTAMP NOT NULL,
	pot INTEGER NOT NULL,
	summary TEXT NOT NULL  -- full DealSummary as JSON
);
CREATE INDEX IF NOT EXISTS idx_deal_summaries_ended ON deal_summaries(ended_at)`

// Store is a SQLite-backed deal summary archive
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the archive database at path. Use
// ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive database: %w", err)
	}
	if _, err := db.Exec(createSummariesTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Save writes one deal summary. Saving the same deal twice is an error.
func (s *Store) Save(summary game.DealSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encoding summary %s: %w", summary.DealID, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO deal_summaries (deal_id, variant, started_at, ended_at, pot, summary) VALUES (?, ?, ?, ?, ?, ?)`,
		summary.DealID, string(summary.Variant), summary.StartedAt, summary.EndedAt, summary.Pot, string(payload),
	)
	if err != nil {
		return fmt.Errorf("saving summary %s: %w", summary.DealID, err)
	}
	return nil
}

// ListRecent returns up to n summaries, newest first
func (s *Store) ListRecent(n int) ([]game.DealSummary, error) {
	rows, err := s.db.Query(
		`SELECT summary FROM deal_summaries ORDER BY ended_at DESC, deal_id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("listing summaries: %w", err)
	}
	defer rows.Close()

	var summaries []game.DealSummary
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning summary row: %w", err)
		}
		var summary game.DealSummary
		if err := json.Unmarshal([]byte(payload), &summary); err != nil {
			return nil, fmt.Errorf("decoding summary: %w", err)
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

// Prune deletes all but the newest keep summaries, bounding the archive
func (s *Store) Prune(keep int) error {
	_, err := s.db.Exec(`
		DELETE FROM deal_summaries WHERE deal_id NOT IN (
			SELECT deal_id FROM deal_summaries ORDER BY ended_at DESC, deal_id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return fmt.Errorf("pruning archive: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
