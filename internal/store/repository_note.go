package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations against the "notes" table using the
// embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (note id, owner, etc.).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateNote persists a new note and returns it with server-assigned fields
// (ID, CreatedAt, UpdatedAt) populated via a RETURNING clause. The owner is
// whatever the caller fixed at creation; this layer does not second-guess it.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.insertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to build insert query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.Title, &created.Content, &created.Owner, &created.CreatedAt, &created.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("owner", note.Owner).
			Msg("error inserting note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindNoteByID retrieves a single note by its id.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoteNotFound];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (n *noteRepository) FindNoteByID(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.selectNoteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FindNoteByID").Msg("failed to build select query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.ID, &found.Title, &found.Content, &found.Owner, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.FindNoteByID").
			Int64("id", id).
			Msg("error selecting note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindNotesByOwner retrieves every note owned by the given username, ordered
// by id. An owner without notes yields an empty slice, not an error.
func (n *noteRepository) FindNotesByOwner(ctx context.Context, owner string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.selectNotesByOwnerQuery(owner)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.FindNotesByOwner").Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.FindNotesByOwner").
			Str("owner", owner).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(&note.ID, &note.Title, &note.Content, &note.Owner, &note.CreatedAt, &note.UpdatedAt)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.FindNotesByOwner").
				Str("owner", owner).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.FindNotesByOwner").
			Str("owner", owner).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// UpdateNote applies the partial mutation described by update and returns the
// note as stored afterwards. Only non-nil fields are written; updated_at is
// always refreshed; the owner column is never part of the SET list.
//
// Error handling:
//   - the note id does not exist → [ErrNoteNotFound];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (n *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := n.updateNoteQuery(update, time.Now().UTC())
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to build update query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Note
	row := n.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&updated.ID, &updated.Title, &updated.Content, &updated.Owner, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Int64("id", update.ID).
			Msg("error updating note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteNote removes a note by id.
//
// Error handling:
//   - zero affected rows → [ErrNoteNotFound];
//   - statement failure → wrapped [ErrExecutingStatement].
func (n *noteRepository) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := n.deleteNoteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("id", id).
			Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
