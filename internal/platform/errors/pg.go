package errors

// Postgres helpers: map pgx errors onto project codes and retry semantics

import (
	"context"
	stderrs "errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE codes this service cares about
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrNotNullViolation    = "23502"
	pgErrCheckViolation      = "23514"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrLockNotAvailable     = "55P03"
	pgErrCannotConnectNow     = "57P03"
)

// ExtractPgError returns the root *pgconn.PgError when present
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether err is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsForeignKeyViolation reports whether err is a foreign key violation
func IsForeignKeyViolation(err error) bool { return IsSQLState(err, pgErrForeignKeyViolation) }

// IsSerializationFailure reports whether err is a serialization failure
func IsSerializationFailure(err error) bool { return IsSQLState(err, pgErrSerializationFailure) }

// IsDeadlock reports whether err is a deadlock
func IsDeadlock(err error) bool { return IsSQLState(err, pgErrDeadlockDetected) }

// FromPG wraps a raw Postgres error into a coded *Error; nil stays nil
func FromPG(err error, op string) error {
	if err == nil {
		return nil
	}
	if pgErr, ok := ExtractPgError(err); ok {
		code := ErrorCodeDB
		switch pgErr.Code {
		case pgErrUniqueViolation:
			code = ErrorCodeDuplicateKey
		case pgErrNotNullViolation, pgErrCheckViolation:
			code = ErrorCodeInvalidArgument
		case pgErrCannotConnectNow:
			code = ErrorCodeUnavailable
		}
		return WithOp(Wrap(err, code, pgErr.Message), op)
	}
	return WithOp(Wrap(err, ErrorCodeDB, "database error"), op)
}

// IsRetryable reports whether a single re-attempt is worthwhile
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pgErr, ok := ExtractPgError(err); ok {
		switch pgErr.Code {
		case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrLockNotAvailable, pgErrCannotConnectNow:
			return true
		}
		return false
	}
	// driver-level connection drops come through as plain errors
	s := err.Error()
	return strings.Contains(s, "connection reset") || strings.Contains(s, "broken pipe")
}

// Retryable delegates to backend-specific logic; Postgres today
func Retryable(err error) bool { return IsRetryable(err) }
