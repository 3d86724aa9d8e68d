package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

// DB wraps a database/sql connection together with everything the
// repositories need to stay backend-agnostic: a squirrel statement builder
// configured with the backend's placeholder format, an error classifier for
// the backend's driver, and the goose dialect used for migrations.
type DB struct {
	*sql.DB

	// builder produces SQL with the placeholder style of the active backend
	// ($1 for PostgreSQL, ? for SQLite).
	builder sq.StatementBuilderType

	// errorClassifier maps driver-level errors to retryability and
	// constraint-violation classes.
	errorClassifier ErrorClassifier

	// dialect is the goose dialect name of the active backend.
	dialect string

	logger *logger.Logger
}

// NewConnect opens a database connection for the configured backend.
//
// cfg.Driver selects the backend: "pgx" (PostgreSQL, the default) or
// "sqlite3" (embedded single-binary deployments).
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "", config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// Migrate applies all embedded migrations for the active backend dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// ExecContext runs a statement through the underlying connection, retrying it
// once when the classifier reports a transient failure such as a dropped
// connection or a deadlock rollback.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	result, err := db.DB.ExecContext(ctx, query, args...)
	if err != nil && db.errorClassifier.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Str("func", "DB.ExecContext").Msg("transient DB error, retrying statement")
		return db.DB.ExecContext(ctx, query, args...)
	}

	return result, err
}

// QueryContext runs a query through the underlying connection with the same
// single-retry policy as [DB.ExecContext].
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil && db.errorClassifier.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Str("func", "DB.QueryContext").Msg("transient DB error, retrying query")
		return db.DB.QueryContext(ctx, query, args...)
	}

	return rows, err
}
