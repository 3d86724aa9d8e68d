// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and the session
// token lifecycle using a UserRepository and a SessionRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionRepository is the data-access layer for session tokens.
	sessionRepository store.SessionRepository

	// bcryptCost is the bcrypt work factor applied at registration.
	// Zero falls back to bcrypt.DefaultCost.
	bcryptCost int

	// sessionDuration controls how long a newly created session remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		bcryptCost:        cfg.BcryptCost,
		sessionDuration:   cfg.SessionDuration,
		logger:            logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that username, email, both name parts and the password are
// non-empty, hashes the password with bcrypt, and delegates persistence to
// the UserRepository. The plain-text password never reaches the store.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrDuplicateUser).
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || user.FirstName == "" || user.LastName == "" || password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.cost())
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the supplied password
// against the stored bcrypt hash. An unknown username and a wrong password
// both surface as ErrInvalidCredentials so that callers cannot probe which
// usernames exist.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidCredentials if the account does not exist or the password
//     does not match.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Login(ctx context.Context, username string, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("username", username).Msg("login attempt for unknown user")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Error().Str("username", username).Msg("password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateSession establishes a new authenticated session for the given user.
//
// The session token is an opaque random string with no embedded claims; all
// session state lives server-side. The session expires sessionDuration after
// creation.
//
// Returns the persisted session or a wrapped error if token generation or
// persistence fails.
func (a *authService) CreateSession(ctx context.Context, username string) (models.Session, error) {
	log := logger.FromContext(ctx)

	token, err := utils.NewSessionToken()
	if err != nil {
		log.Err(err).Str("username", username).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("session token generation failed: %w", err)
	}

	now := time.Now().UTC()
	session := models.Session{
		Token:     token,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}

	if err := a.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("username", username).Msg("session creation ended with error")
		return models.Session{}, fmt.Errorf("session creation ended with error: %w", err)
	}

	return session, nil
}

// ValidateSession resolves a raw session token to its session record.
//
// An expired session is removed from the store on sight and reported as
// ErrSessionExpired; the periodic sweeper only exists to reclaim sessions
// whose owners never came back.
//
// Returns the session on success or:
//   - store.ErrSessionNotFound if no session matches the token.
//   - ErrSessionExpired if the session has outlived its expiry.
func (a *authService) ValidateSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	session, err := a.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, err
		}
		log.Err(err).Msg("session lookup failed")
		return models.Session{}, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.Expired(time.Now().UTC()) {
		if err := a.sessionRepository.DeleteSession(ctx, token); err != nil {
			log.Err(err).Str("username", session.Username).Msg("expired session cleanup failed")
		}
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

// Logout terminates the session identified by token.
//
// Logging out an already-terminated or unknown session is not an error:
// the post-condition (no such session exists) holds either way.
func (a *authService) Logout(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if err := a.sessionRepository.DeleteSession(ctx, token); err != nil {
		log.Err(err).Msg("session deletion ended with error")
		return fmt.Errorf("session deletion ended with error: %w", err)
	}

	return nil
}

// cost returns the configured bcrypt work factor, falling back to
// bcrypt.DefaultCost when unset.
func (a *authService) cost() int {
	if a.bcryptCost == 0 {
		return bcrypt.DefaultCost
	}

	return a.bcryptCost
}
