// Package store is the data access layer over Postgres: generic tabular
// reads, single-statement writes, and typed helpers for the entities the
// CRUD surface manages. All parameters are bound, never interpolated.
package store

import (
	"context"

	"github.com/cricsight/cricsight-data/internal/db"
)

// Store executes reads and writes against the relational store. Each call
// acquires a pooled connection for the duration of that call only.
type Store struct {
	pool *db.Pool
}

// New creates a Store over an established pool.
func New(pool *db.Pool) *Store {
	return &Store{pool: pool}
}

// Query executes a parameterized SELECT and returns the full result as a
// Table. Zero matching rows yield an empty Table, not an error. Failures are
// reported as QueryError; no retry is attempted.
func (s *Store) Query(ctx context.Context, sql string, args ...any) (Table, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return Table{}, &QueryError{Err: err}
	}
	defer rows.Close()

	t, err := collectTable(rows)
	if err != nil {
		return Table{}, &QueryError{Err: err}
	}
	return t, nil
}

// Exec executes a parameterized INSERT/UPDATE/DELETE as a single implicit
// transaction and returns the affected-row count. Failures are reported as
// WriteError; the statement never partially commits.
func (s *Store) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := s.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, &WriteError{Err: err}
	}
	return tag.RowsAffected(), nil
}
