package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// UserRepository is the persistence port for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns the stored record.
	// Returns ErrDuplicateUser when the username or email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up an account by its primary key.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// DeleteUser removes the account together with all of its notes and
	// sessions in a single transaction. Returns ErrUserNotFound when no such
	// account exists; in that case nothing is deleted.
	DeleteUser(ctx context.Context, username string) error
}

// NoteRepository is the persistence port for notes.
type NoteRepository interface {
	// CreateNote persists a new note and returns it with server-assigned
	// fields (ID, CreatedAt, UpdatedAt) populated.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// FindNoteByID looks up a note by id.
	// Returns ErrNoteNotFound when no such note exists.
	FindNoteByID(ctx context.Context, id int64) (models.Note, error)

	// FindNotesByOwner returns all notes owned by the given username,
	// ordered by id. An owner without notes yields an empty slice.
	FindNotesByOwner(ctx context.Context, owner string) ([]models.Note, error)

	// UpdateNote applies a partial title/content mutation and returns the
	// updated record. The owner column is never touched.
	// Returns ErrNoteNotFound when no such note exists.
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)

	// DeleteNote removes a note by id.
	// Returns ErrNoteNotFound when no such note exists.
	DeleteNote(ctx context.Context, id int64) error
}

// SessionRepository is the persistence port for the per-client
// authenticated-identity slot.
type SessionRepository interface {
	// CreateSession persists a new session row.
	CreateSession(ctx context.Context, session models.Session) error

	// FindSessionByToken looks up a session by its token.
	// Returns ErrSessionNotFound when no such session exists.
	FindSessionByToken(ctx context.Context, token string) (models.Session, error)

	// DeleteSession removes a session by token. Deleting an absent session
	// is not an error: logout must always succeed.
	DeleteSession(ctx context.Context, token string) error

	// DeleteSessionsByUser removes every session issued for the given
	// username.
	DeleteSessionsByUser(ctx context.Context, username string) error

	// DeleteExpiredSessions removes all sessions whose expiry lies before
	// now and reports how many rows were swept.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
