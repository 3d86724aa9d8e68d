package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassifier] for the embedded SQLite
// backend. It inspects the sqlite3.Error codes returned by the
// mattn/go-sqlite3 driver.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassifier].
//
// SQLITE_BUSY and SQLITE_LOCKED signal contention on the database file and
// may succeed on a later attempt; everything else (constraint violations,
// malformed SQL, type mismatches) is permanent.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

// IsUniqueViolation implements [ErrorClassifier]. It reports whether err was
// raised by a UNIQUE or PRIMARY KEY constraint.
func (c *SQLiteErrorClassifier) IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
