// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const testCookieName = "session"

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testEnv bundles a fully wired Handler (router included, so middleware
// runs) with the gomock services behind it.
type testEnv struct {
	auth   *mock.MockAuthService
	notes  *mock.MockNotesService
	users  *mock.MockUsersService
	router http.Handler
}

func newTestEnv(t *testing.T, ctrl *gomock.Controller) *testEnv {
	t.Helper()

	auth := mock.NewMockAuthService(ctrl)
	notes := mock.NewMockNotesService(ctrl)
	users := mock.NewMockUsersService(ctrl)

	services := &service.Services{
		AuthService:  auth,
		NotesService: notes,
		UsersService: users,
	}

	h, err := NewHandler(services, config.App{SessionCookieName: testCookieName}, logger.Nop())
	require.NoError(t, err)

	return &testEnv{
		auth:   auth,
		notes:  notes,
		users:  users,
		router: h.Init(),
	}
}

// loginAs attaches a session cookie to req and teaches the auth mock to
// resolve it to username.
func (e *testEnv) loginAs(req *http.Request, username string) {
	token := "token-" + username
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	e.auth.EXPECT().ValidateSession(gomock.Any(), token).Return(models.Session{
		Token:     token,
		Username:  username,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}, nil).AnyTimes()
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func postFormRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// ─────────────────────────────────────────────
// Routing and session resolution
// ─────────────────────────────────────────────

func TestHome_AnonymousRedirectsToRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/register", rec.Header().Get("Location"))
}

func TestHome_AuthenticatedRedirectsToProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	env.loginAs(req, "alice")

	rec := env.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/users/alice", rec.Header().Get("Location"))
}

func TestWithSession_StaleCookieIsClearedAndRequestStaysAnonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "stale"})
	env.auth.EXPECT().ValidateSession(gomock.Any(), "stale").Return(models.Session{}, service.ErrSessionExpired)

	rec := env.do(req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/register", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, testCookieName, cookies[0].Name)
	require.Less(t, cookies[0].MaxAge, 0, "stale session cookie must be expired")
}

func TestRequireAuth_AnonymousIsBouncedToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	protected := []string{
		"/users/alice",
		"/users/alice/notes/new",
		"/notes/42/update",
	}
	for _, target := range protected {
		rec := env.do(httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusSeeOther, rec.Code, target)
		require.Equal(t, "/login", rec.Header().Get("Location"), target)
	}
}

func TestTraceID_HeaderIsAlwaysSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "passed-through")
	rec = env.do(req)
	require.Equal(t, "passed-through", rec.Header().Get("X-Trace-ID"))
}
