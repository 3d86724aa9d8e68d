package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:embed templates
var templatesFS embed.FS

// templateData is the single view-model passed to every page template.
// Fields irrelevant to a given page stay zero-valued.
type templateData struct {
	// AuthenticatedUser is the username bound to the session cookie, empty
	// for anonymous visitors. Drives the nav bar.
	AuthenticatedUser string

	// Form is the page's form value (one of the internal/forms types),
	// rendered back with its field errors on validation failure.
	Form any

	// Message is a page-level notice, e.g. a rejected login attempt.
	Message string

	User  models.User
	Notes []models.Note

	// FormAction is the POST target of the note form, which is shared
	// between the create and the edit page.
	FormAction string
}

// newTemplateCache parses every page template against the shared base layout
// once at startup.
func newTemplateCache() (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := filepath.Base(page)

		ts, err := template.ParseFS(templatesFS, "templates/base.html", page)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", name, err)
		}

		cache[name] = ts
	}

	return cache, nil
}

// render executes the named page template into a buffer first, so a broken
// template surfaces as a clean 500 instead of a half-written response body.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data templateData) {
	log := logger.FromRequest(r)

	ts, ok := h.templates[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		log.Err(err).Str("page", page).Msg("error executing template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
