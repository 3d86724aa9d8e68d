package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"

	_ "github.com/mattn/go-sqlite3" // database/sql driver "sqlite3"
)

// NewConnectSQLite opens an embedded SQLite database for single-binary
// deployments. cfg.DSN is the database file path; foreign-key enforcement
// should be enabled via the DSN (e.g. "notes.db?_foreign_keys=on") so the
// notes→users reference behaves like the PostgreSQL backend.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// SQLite serialises writers; a single connection avoids SQLITE_BUSY churn.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:              conn,
		builder:         sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassifier: NewSQLiteErrorClassifier(),
		dialect:         "sqlite3",
		logger:          log,
	}

	return db, nil
}
