package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Storages aggregates all repository implementations behind one constructor
// so that the service layer receives a single wired dependency.
type Storages struct {
	UserRepository    UserRepository
	NoteRepository    NoteRepository
	SessionRepository SessionRepository
}

// NewStorages connects to the configured database backend, applies pending
// migrations, and wires all repositories on top of the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		NoteRepository:    NewNoteRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
	}, nil
}
