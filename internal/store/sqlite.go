package store

import (
	"context"
	"database/sql"
	"errors"
)

// SQLite is an Archive backed by the daily_solutions table.
type SQLite struct{ db *sql.DB }

// NewSQLite wraps an open, migrated database.
func NewSQLite(db *sql.DB) *SQLite { return &SQLite{db: db} }

func (s *SQLite) Get(ctx context.Context, date string) (Entry, error) {
	e := Entry{Date: date}
	err := s.db.QueryRowContext(ctx,
		"SELECT word_index, word, days_since_launch FROM daily_solutions WHERE date=?",
		date,
	).Scan(&e.WordIndex, &e.Word, &e.DaysSinceLaunch)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *SQLite) Put(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_solutions(date, word_index, word, days_since_launch)
VALUES(?,?,?,?)`, e.Date, e.WordIndex, e.Word, e.DaysSinceLaunch,
	)
	return err
}
