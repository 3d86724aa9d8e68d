package store

// ErrorClassification is the result type returned by [ErrorClassifier.Classify].
// It indicates whether a failed database operation should be retried or
// abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, constraint
	// violations, syntax errors, and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable
)

// ErrorClassifier inspects driver-level errors of one database backend.
// Repositories use it to stay ignorant of which driver is behind the
// connection.
type ErrorClassifier interface {
	// Classify reports whether the failed operation is worth retrying.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err was caused by a UNIQUE or
	// PRIMARY KEY constraint violation.
	IsUniqueViolation(err error) bool
}
