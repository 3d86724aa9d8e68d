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

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// Sessions are plain rows in the "sessions" table; the transport layer holds
// only the opaque token.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row.
func (s *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	query, args, err := s.insertSessionQuery(session)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.CreateSession").Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.CreateSession").
			Str("username", session.Username).
			Msg("error inserting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindSessionByToken retrieves a session by its token.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSessionNotFound];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (s *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.selectSessionQuery(token)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.FindSessionByToken").Msg("failed to build select query")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Session
	row := s.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.Token, &found.Username, &found.CreatedAt, &found.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "sessionRepository.FindSessionByToken").Msg("error selecting session")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteSession removes a session by token. A missing row is not an error —
// logout is unconditional.
func (s *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.deleteSessionQuery(token)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSessionsByUser removes every session issued for the given username.
// Used when the account itself is deleted.
func (s *sessionRepository) DeleteSessionsByUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.deleteSessionsByUserQuery(username)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteSessionsByUser").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.DeleteSessionsByUser").
			Str("username", username).
			Msg("error deleting user sessions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteExpiredSessions removes all sessions whose expiry lies before now and
// reports how many rows were swept. Called periodically by the session
// sweeper worker.
func (s *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.deleteExpiredSessionsQuery(now)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpiredSessions").Msg("failed to build delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpiredSessions").Msg("error sweeping expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	swept, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.DeleteExpiredSessions").Msg("error reading affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return swept, nil
}
