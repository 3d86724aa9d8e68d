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

// usersService is the concrete implementation of UsersService.
// Profile pages and account deletion are strictly self-service: the
// authenticated user can only ever address their own account.
type usersService struct {
	// userRepository is the data-access layer used to look up and delete users.
	userRepository store.UserRepository

	// noteRepository is the data-access layer used to list the profile's notes.
	noteRepository store.NoteRepository

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUsersService constructs a new UsersService wired to the given
// repositories.
func NewUsersService(userRepository store.UserRepository, noteRepository store.NoteRepository, logger *logger.Logger) UsersService {
	return &usersService{
		userRepository: userRepository,
		noteRepository: noteRepository,
		logger:         logger,
	}
}

// Profile returns the account record together with all of its notes, ordered
// by creation.
//
// Returns the user and notes or:
//   - ErrUnauthenticated / ErrForbidden from the ownership check.
//   - store.ErrUserNotFound if the account vanished between session
//     validation and lookup.
//   - A wrapped storage error on any other repository failure.
func (u *usersService) Profile(ctx context.Context, username string) (models.User, []models.Note, error) {
	log := logger.FromContext(ctx)

	if err := authorize(ctx, username); err != nil {
		return models.User{}, nil, err
	}

	foundUser, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, nil, err
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, nil, fmt.Errorf("user search by username failed: %w", err)
	}

	notes, err := u.noteRepository.FindNotesByOwner(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("notes listing ended with error")
		return models.User{}, nil, fmt.Errorf("notes listing ended with error: %w", err)
	}

	return foundUser, notes, nil
}

// DeleteUser removes the account together with all of its notes and
// sessions. The cascade runs in a single transaction inside the repository,
// so a failure midway leaves the account fully intact.
//
// Returns nil on success or:
//   - ErrUnauthenticated / ErrForbidden from the ownership check.
//   - store.ErrUserNotFound if no such account exists.
//   - A wrapped storage error if the cascade fails.
func (u *usersService) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if err := authorize(ctx, username); err != nil {
		return err
	}

	if err := u.userRepository.DeleteUser(ctx, username); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return err
		}
		log.Err(err).Str("username", username).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}
