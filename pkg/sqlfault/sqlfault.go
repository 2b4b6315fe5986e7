// Package sqlfault classifies raw database-driver errors into engine faults.
//
// The engine talks to Postgres through pgx and to embedded SQLite stores
// through modernc.org/sqlite; both report failures with driver-specific
// types and codes. This package maps the codes the engine cares about onto
// classified faults so callers can match on error classes instead of driver
// internals. Driver errors that have no dedicated class become unclassified
// KindSQL faults; the original driver error is always retained as the cause.
package sqlfault

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"cindererr/pkg/fault"
)

// FromPostgres converts a pgx error into an engine fault by SQLSTATE.
// Errors that are not *pgconn.PgError (including nil) pass through
// unchanged.
func FromPostgres(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505": // unique_violation
		return fault.Wrap(fault.KindSQL, err, "DUPLICATE_KEY", pgErr.ConstraintName)
	case "23503": // foreign_key_violation
		return fault.Wrap(fault.KindSQL, err, "FOREIGN_KEY_VIOLATION", pgErr.ConstraintName)
	case "23502": // not_null_violation
		return fault.Wrap(fault.KindSQL, err, "NOT_NULL_VIOLATION", pgErr.ColumnName)
	case "22012": // division_by_zero
		return fault.Wrap(fault.KindArithmetic, err, "DIVISION_BY_ZERO")
	case "22007", "22008": // invalid_datetime_format, datetime_field_overflow
		return fault.Wrap(fault.KindDateTime, err, "INVALID_DATETIME", pgErr.Message)
	case "42601": // syntax_error
		return fault.Wrap(fault.KindSQL, err, "SQL_SYNTAX_ERROR", pgErr.Message)
	case "42704": // undefined_object
		return fault.Wrap(fault.KindTypeNotFound, err, "TYPE_NOT_FOUND", pgErr.Message)
	case "42501": // insufficient_privilege
		return fault.Wrap(fault.KindSecurity, err, "ACCESS_DENIED", pgErr.Message)
	case "0A000": // feature_not_supported
		return fault.Wrap(fault.KindSQLFeatureUnsupported, err, "UNSUPPORTED_FEATURE", pgErr.Message)
	case "40001", "40P01": // serialization_failure, deadlock_detected
		return fault.Wrap(fault.KindConcurrentModification, err, "CONCURRENT_MODIFICATION", subject(pgErr.TableName))
	}
	return fault.NewMessage(fault.KindSQL, pgErr.Message, err)
}

// FromSQLite converts a modernc.org/sqlite error into an engine fault by
// result code. Errors that are not *sqlite.Error (including nil) pass
// through unchanged.
func FromSQLite(err error) error {
	var sErr *sqlite.Error
	if !errors.As(err, &sErr) {
		return err
	}
	return classifySQLite(sErr.Code(), sErr.Error(), err)
}

// classifySQLite maps a SQLite result code (possibly extended) and message
// onto a fault. Extended constraint codes are checked first; everything else
// is matched on the primary code in the low byte.
func classifySQLite(code int, msg string, cause error) error {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fault.Wrap(fault.KindSQL, cause, "DUPLICATE_KEY", msg)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fault.Wrap(fault.KindSQL, cause, "FOREIGN_KEY_VIOLATION", msg)
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return fault.Wrap(fault.KindSQL, cause, "NOT_NULL_VIOLATION", msg)
	}

	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return fault.Wrap(fault.KindConcurrentModification, cause, "CONCURRENT_MODIFICATION", "the database")
	case sqlite3.SQLITE_AUTH, sqlite3.SQLITE_PERM, sqlite3.SQLITE_READONLY:
		return fault.Wrap(fault.KindSecurity, cause, "ACCESS_DENIED", msg)
	case sqlite3.SQLITE_CANTOPEN:
		return fault.NewMessage(fault.KindIO, msg, cause)
	}
	return fault.NewMessage(fault.KindSQL, msg, cause)
}

func subject(table string) string {
	if table == "" {
		return "the database"
	}
	return table
}
