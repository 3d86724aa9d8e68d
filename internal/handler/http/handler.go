package http

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type Handler struct {
	services  *service.Services
	templates map[string]*template.Template

	cookieName    string
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) (*Handler, error) {
	templates, err := newTemplateCache()
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		templates:     templates,
		cookieName:    cfg.SessionCookieName,
		secureCookies: cfg.SecureCookies,
		logger:        logger,
	}, nil
}

// setSessionCookie writes the session token to the browser. The cookie is
// HttpOnly so page scripts can never read it; the session state itself lives
// server-side.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie expires the session cookie immediately.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the raw session token from the request cookie, or
// empty string when the browser sent none.
func (h *Handler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
