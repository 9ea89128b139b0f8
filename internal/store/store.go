// Package store keeps the round journal of the running process in an
// in-memory SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/tuiarcade/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const memoryDSN = ":memory:"

// Store wraps SQLite access for round data.
type Store struct {
	db *sql.DB
}

// Open creates an empty in-memory journal and applies migrations. The data is
// gone once the store is closed.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, err
	}
	// Every pooled connection would see its own empty memory database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			peak_combo INTEGER NOT NULL,
			darts_thrown INTEGER NOT NULL,
			caught INTEGER NOT NULL,
			missed INTEGER NOT NULL,
			words_completed INTEGER NOT NULL,
			rating TEXT NOT NULL,
			played_ms INTEGER NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_mode ON rounds(mode);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRound stores a finished round and returns its id.
func (s *Store) InsertRound(ctx context.Context, r model.RoundResult) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (mode, score, peak_combo, darts_thrown, caught, missed, words_completed, rating, played_ms, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Mode,
		r.Score,
		r.PeakCombo,
		r.DartsThrown,
		r.Caught,
		r.Missed,
		r.WordsCompleted,
		r.Rating,
		r.PlayedMs,
		r.StartedAt.Format(time.RFC3339Nano),
		r.EndedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRounds returns rounds in play order, optionally filtered by mode.
func (s *Store) ListRounds(ctx context.Context, mode string) ([]model.RoundResult, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if mode != "" {
		clauses = append(clauses, "mode = ?")
		args = append(args, mode)
	}
	query := fmt.Sprintf(`SELECT id, mode, score, peak_combo, darts_thrown, caught, missed, words_completed, rating, played_ms, started_at, ended_at
		FROM rounds
		WHERE %s
		ORDER BY id ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var rounds []model.RoundResult
	for rows.Next() {
		var r model.RoundResult
		var startedAt, endedAt string
		if err := rows.Scan(&r.ID, &r.Mode, &r.Score, &r.PeakCombo, &r.DartsThrown, &r.Caught, &r.Missed,
			&r.WordsCompleted, &r.Rating, &r.PlayedMs, &startedAt, &endedAt); err != nil {
			return nil, err
		}
		if r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt); err != nil {
			return nil, err
		}
		if r.EndedAt, err = time.Parse(time.RFC3339Nano, endedAt); err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rounds, nil
}

// ModeAggregates returns per-mode round counts, best and average score.
func (s *Store) ModeAggregates(ctx context.Context) ([]model.ModeAggregate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT mode, COUNT(*), MAX(score), AVG(score)
		 FROM rounds
		 GROUP BY mode
		 ORDER BY mode ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.ModeAggregate
	for rows.Next() {
		var agg model.ModeAggregate
		if err := rows.Scan(&agg.Mode, &agg.Rounds, &agg.Best, &agg.AvgScore); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
