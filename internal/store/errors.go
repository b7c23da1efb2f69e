package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// QueryError reports a failed read: malformed SQL, parameter mismatch, or a
// type error while scanning rows.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf("query: %v", e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

// WriteError reports a failed INSERT/UPDATE/DELETE. The statement's implicit
// transaction has been rolled back; nothing was committed.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write: %v", e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// AsWriteError attempts to unwrap an error into a WriteError.
func AsWriteError(err error) (*WriteError, bool) {
	var wErr *WriteError
	if errors.As(err, &wErr) {
		return wErr, true
	}
	return nil, false
}

// IsConstraintViolation reports whether err is a Postgres integrity
// constraint violation (SQLSTATE class 23), e.g. a team_id that does not
// resolve to an existing team.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23"
	}
	return false
}
