package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, and transactional cascade deletion
// against the "users", "notes" and "sessions" tables.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - unique-constraint violation on username or email → [ErrDuplicateUser]
//     (the two columns are deliberately not told apart);
//   - any other driver-level error → wrapped as "unexpected DB error";
//   - scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.Username, &created.Email, &created.FirstName, &created.LastName, &created.PasswordHash, &created.CreatedAt); err != nil {
		if r.db.errorClassifier.IsUniqueViolation(err) {
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("duplicate username or email")
			return models.User{}, ErrDuplicateUser
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUsername retrieves the account whose primary key matches username.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrUserNotFound];
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUserQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.Username, &found.Email, &found.FirstName, &found.LastName, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Str("username", username).Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// DeleteUser removes the account and everything hanging off it in a single
// transaction: sessions first, then owned notes, then the user row itself.
// Either the whole cascade commits or none of it does, so no orphaned note
// can survive the account.
//
// Error handling:
//   - the user row does not exist → [ErrUserNotFound], transaction rolled back;
//   - transaction begin/commit failures → wrapped sentinel errors;
//   - statement failures → wrapped [ErrExecutingStatement].
func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	steps := []func(string) (string, []any, error){
		r.db.deleteSessionsByUserQuery,
		r.db.deleteNotesByOwnerQuery,
	}
	for _, buildQuery := range steps {
		query, args, err := buildQuery(username)
		if err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to build cascade delete query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Str("username", username).Msg("cascade delete step failed")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	query, args, err := r.db.deleteUserQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("username", username).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("username", username).Msg("failed to commit cascade delete")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
