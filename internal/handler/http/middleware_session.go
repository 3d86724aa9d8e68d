package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// withSession resolves the session cookie to an authenticated identity.
//
// When the browser presents a valid session token, the session's username is
// stored in the request context under [utils.SessionUserCtxKey] so that
// downstream handlers and the service-layer ownership guard can read it.
//
// A missing cookie leaves the request anonymous. A stale cookie (session
// unknown or expired) is cleared and the request continues anonymously; only
// a storage failure aborts the request with HTTP 500.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token := h.sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		session, err := h.services.AuthService.ValidateSession(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrSessionNotFound), errors.Is(err, service.ErrSessionExpired):
				h.clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			default:
				log.Err(err).Msg("error occurred during session validation")
				h.serverError(w, r, err)
				return
			}
		}

		ctx = utils.WithSessionUser(ctx, session.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuth gates routes that only make sense for a signed-in user.
// Anonymous requests are bounced to the login page.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}
