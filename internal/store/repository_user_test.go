package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// newTestDB returns a *DB backed by sqlmock and configured like the
// PostgreSQL backend (dollar placeholders, pg error classifier).
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return &DB{
		DB:              conn,
		builder:         sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		errorClassifier: NewPostgresErrorClassifier(),
		dialect:         "pgx",
		logger:          logger.Nop(),
	}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *DB) {
	db, mock := newTestDB(t)
	repo := &userRepository{
		db:     db,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "alice",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Liddell",
		PasswordHash: "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"username", "email", "first_name", "last_name", "password_hash", "created_at"}).
		AddRow(user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.FirstName, user.LastName, user.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected server-assigned created_at, got zero value")
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "alice"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "alice"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"username", "email", "first_name", "last_name", "password_hash", "created_at"}).
		AddRow("alice", "alice@example.com", "Alice", "Liddell", "$2a$10$hash", now)

	mock.ExpectQuery("SELECT username, email, first_name, last_name, password_hash, created_at FROM users").
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "alice@example.com" {
		t.Errorf("expected email alice@example.com, got %s", found.Email)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT username, email, first_name, last_name, password_hash, created_at FROM users").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUser_CascadeCommits(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM notes").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM users").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteUser(ctx, "alice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteUser_NotFound_RollsBack(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM notes").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM users").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(ctx, "ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteUser_NoteDeletionFails_RollsBack(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM notes").
		WithArgs("alice").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.DeleteUser(ctx, "alice")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
