// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var errStorage = errors.New("storage error")

// newTestAuthSvc returns a bare *authService wired to gomock repositories.
// bcrypt.MinCost keeps the hashing rounds cheap in tests.
func newTestAuthSvc(ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockSessions := mock.NewMockSessionRepository(ctrl)

	svc := &authService{
		userRepository:    mockUsers,
		sessionRepository: mockSessions,
		bcryptCost:        bcrypt.MinCost,
		sessionDuration:   time.Hour,
		logger:            logger.Nop(),
	}

	return svc, mockUsers, mockSessions
}

func validUser() models.User {
	return models.User{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Liddell",
	}
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.NotEqual(t, "wonderland", user.PasswordHash, "plain-text password must never reach the store")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("wonderland")))
			return user, nil
		},
	)

	registered, err := svc.RegisterUser(ctx, validUser(), "wonderland")

	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Username)
}

func TestAuthService_RegisterUser_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(ctrl)

	tests := []struct {
		name     string
		mutate   func(u *models.User)
		password string
	}{
		{name: "empty username", mutate: func(u *models.User) { u.Username = "" }, password: "pw"},
		{name: "empty email", mutate: func(u *models.User) { u.Email = "" }, password: "pw"},
		{name: "empty first name", mutate: func(u *models.User) { u.FirstName = "" }, password: "pw"},
		{name: "empty last name", mutate: func(u *models.User) { u.LastName = "" }, password: "pw"},
		{name: "empty password", mutate: func(u *models.User) {}, password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := validUser()
			tt.mutate(&user)

			_, err := svc.RegisterUser(context.Background(), user, tt.password)

			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrDuplicateUser)

	_, err := svc.RegisterUser(ctx, validUser(), "wonderland")

	require.ErrorIs(t, err, store.ErrDuplicateUser)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("wonderland"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := validUser()
	stored.PasswordHash = string(hash)
	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(stored, nil)

	authenticated, err := svc.Login(ctx, "alice", "wonderland")

	require.NoError(t, err)
	assert.Equal(t, "alice", authenticated.Username)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, "ghost", "whatever")

	// unknown user and wrong password must be indistinguishable to the caller
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("wonderland"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := validUser()
	stored.PasswordHash = string(hash)
	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(stored, nil)

	_, err = svc.Login(ctx, "alice", "looking-glass")

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthSvc(ctrl)

	_, err := svc.Login(context.Background(), "", "")

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByUsername(ctx, "alice").Return(models.User{}, errStorage)

	_, err := svc.Login(ctx, "alice", "wonderland")

	require.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// CreateSession
// ─────────────────────────────────────────────

func TestAuthService_CreateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(ctrl)
	ctx := context.Background()

	var persisted models.Session
	mockSessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, session models.Session) error {
			persisted = session
			return nil
		},
	)

	session, err := svc.CreateSession(ctx, "alice")

	require.NoError(t, err)
	assert.Equal(t, persisted, session)
	assert.Equal(t, "alice", session.Username)
	assert.NotEmpty(t, session.Token)
	assert.WithinDuration(t, session.CreatedAt.Add(time.Hour), session.ExpiresAt, time.Second)
}

func TestAuthService_CreateSession_UniqueTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(nil).Times(2)

	first, err := svc.CreateSession(ctx, "alice")
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
}

func TestAuthService_CreateSession_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().CreateSession(ctx, gomock.Any()).Return(errStorage)

	_, err := svc.CreateSession(ctx, "alice")

	require.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// ValidateSession
// ─────────────────────────────────────────────

func TestAuthService_ValidateSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(ctrl)
	ctx := context.Background()

	stored := models.Session{
		Token:     "token-1",
		Username:  "alice",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	mockSessions.EXPECT().FindSessionByToken(ctx, "token-1").Return(stored, nil)

	session, err := svc.ValidateSession(ctx, "token-1")

	require.NoError(t, err)
	assert.Equal(t, stored, session)
}

func TestAuthService_ValidateSession_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().FindSessionByToken(ctx, "gone").Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.ValidateSession(ctx, "gone")

	require.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestAuthService_ValidateSession_Expired_DeletesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(ctrl)
	ctx := context.Background()

	stale := models.Session{
		Token:     "stale",
		Username:  "alice",
		CreatedAt: time.Now().UTC().Add(-2 * time.Hour),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	gomock.InOrder(
		mockSessions.EXPECT().FindSessionByToken(ctx, "stale").Return(stale, nil),
		mockSessions.EXPECT().DeleteSession(ctx, "stale").Return(nil),
	)

	_, err := svc.ValidateSession(ctx, "stale")

	require.ErrorIs(t, err, ErrSessionExpired)
}

// ─────────────────────────────────────────────
// Logout
// ─────────────────────────────────────────────

func TestAuthService_Logout_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().DeleteSession(ctx, "token-1").Return(nil)

	require.NoError(t, svc.Logout(ctx, "token-1"))
}

func TestAuthService_Logout_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockSessions := newTestAuthSvc(ctrl)
	ctx := context.Background()

	mockSessions.EXPECT().DeleteSession(ctx, "token-1").Return(errStorage)

	require.ErrorIs(t, svc.Logout(ctx, "token-1"), errStorage)
}
