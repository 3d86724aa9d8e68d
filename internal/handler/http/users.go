package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	username := chi.URLParam(r, "username")

	user, notes, err := h.services.UsersService.Profile(ctx, username)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "profile.html", templateData{
		AuthenticatedUser: authenticatedUser(r),
		User:              user,
		Notes:             notes,
	})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	username := chi.URLParam(r, "username")

	if err := h.services.UsersService.DeleteUser(ctx, username); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	log.Info().Str("username", username).Msg("account deleted")

	// the session rows died with the account; the cookie follows
	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
