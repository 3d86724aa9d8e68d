// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// notesService is the concrete implementation of NotesService.
// Every operation runs the ownership check before touching storage: a note
// is only ever visible to, and mutable by, the account that created it.
type notesService struct {
	// noteRepository is the data-access layer for notes.
	noteRepository store.NoteRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewNotesService constructs a new NotesService wired to the given
// NoteRepository.
func NewNotesService(noteRepository store.NoteRepository, logger *logger.Logger) NotesService {
	return &notesService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// AddNote creates a new note under the given owner's account.
//
// The owner must match the authenticated user in ctx: notes cannot be
// planted into someone else's collection.
//
// Returns the persisted note (with server-assigned ID and timestamps) or:
//   - ErrUnauthenticated / ErrForbidden from the ownership check.
//   - ErrInvalidDataProvided if title is empty.
//   - A wrapped storage error if persistence fails.
func (n *notesService) AddNote(ctx context.Context, owner string, title string, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := authorize(ctx, owner); err != nil {
		return models.Note{}, err
	}

	if title == "" {
		log.Error().Str("owner", owner).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	createdNote, err := n.noteRepository.CreateNote(ctx, models.Note{
		Title:   title,
		Content: content,
		Owner:   owner,
	})
	if err != nil {
		log.Err(err).Str("owner", owner).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// NoteForEdit fetches a note for display in the edit form.
//
// The ownership check runs against the stored owner, so a foreign note is
// rejected with ErrForbidden even before any mutation is attempted: viewing
// the edit form of someone else's note is itself off limits.
//
// Returns the note or:
//   - store.ErrNoteNotFound if no such note exists.
//   - ErrUnauthenticated / ErrForbidden from the ownership check.
func (n *notesService) NoteForEdit(ctx context.Context, id int64) (models.Note, error) {
	note, err := n.fetchOwned(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// EditNote replaces the title and content of an existing note.
//
// Returns the updated note or:
//   - store.ErrNoteNotFound if no such note exists.
//   - ErrUnauthenticated / ErrForbidden from the ownership check.
//   - ErrInvalidDataProvided if title is empty.
//   - A wrapped storage error if the update fails.
func (n *notesService) EditNote(ctx context.Context, id int64, title string, content string) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.fetchOwned(ctx, id)
	if err != nil {
		return models.Note{}, err
	}

	if title == "" {
		log.Error().Int64("id", id).Msg("invalid note data provided")
		return models.Note{}, ErrInvalidDataProvided
	}

	updatedNote, err := n.noteRepository.UpdateNote(ctx, models.NoteUpdate{
		ID:      note.ID,
		Title:   &title,
		Content: &content,
	})
	if err != nil {
		log.Err(err).Int64("id", id).Msg("note update ended with error")
		return models.Note{}, fmt.Errorf("note update ended with error: %w", err)
	}

	return updatedNote, nil
}

// DeleteNote removes an existing note.
//
// Returns nil on success or:
//   - store.ErrNoteNotFound if no such note exists.
//   - ErrUnauthenticated / ErrForbidden from the ownership check.
//   - A wrapped storage error if the deletion fails.
func (n *notesService) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	note, err := n.fetchOwned(ctx, id)
	if err != nil {
		return err
	}

	if err := n.noteRepository.DeleteNote(ctx, note.ID); err != nil {
		log.Err(err).Int64("id", id).Msg("note deletion ended with error")
		return fmt.Errorf("note deletion ended with error: %w", err)
	}

	return nil
}

// fetchOwned loads a note by id and verifies that the authenticated user
// owns it. All mutating note operations and the edit-form fetch go through
// this single gate.
func (n *notesService) fetchOwned(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.FindNoteByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			return models.Note{}, err
		}
		log.Err(err).Int64("id", id).Msg("note search by id failed")
		return models.Note{}, fmt.Errorf("note search by id failed: %w", err)
	}

	if err := authorize(ctx, note.Owner); err != nil {
		log.Error().Int64("id", id).Str("owner", note.Owner).Msg("note access denied")
		return models.Note{}, err
	}

	return note, nil
}
