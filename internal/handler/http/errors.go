package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// handleServiceError translates service and store errors into browser
// responses. Internals (raw store errors, stack traces) never reach the
// page; the user gets a redirect or a terse error view.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case errors.Is(err, service.ErrForbidden):
		log.Error().Str("uri", r.RequestURI).Msg("access to foreign resource denied")
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, store.ErrNoteNotFound), errors.Is(err, store.ErrUserNotFound):
		h.notFound(w, r)
	case errors.Is(err, service.ErrInvalidDataProvided):
		h.clientError(w, r, http.StatusBadRequest)
	default:
		h.serverError(w, r, err)
	}
}

// notFound renders the 404 page.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusNotFound, "error.html", templateData{
		AuthenticatedUser: authenticatedUser(r),
		Message:           "Page not found",
	})
}

// clientError renders a terse error page with the given 4xx status.
func (h *Handler) clientError(w http.ResponseWriter, r *http.Request, status int) {
	h.render(w, r, status, "error.html", templateData{
		AuthenticatedUser: authenticatedUser(r),
		Message:           http.StatusText(status),
	})
}

// serverError logs the cause and responds with a generic 500.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("internal server error")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// authenticatedUser returns the session identity for view rendering, empty
// for anonymous requests.
func authenticatedUser(r *http.Request) string {
	username, _ := utils.GetSessionUserFromContext(r.Context())
	return username
}
