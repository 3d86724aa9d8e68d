package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-notes-keeper/internal/forms"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

func (h *Handler) newNoteForm(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "username")

	if username, _ := utils.GetSessionUserFromContext(r.Context()); username != owner {
		h.handleServiceError(w, r, service.ErrForbidden)
		return
	}

	h.render(w, r, http.StatusOK, "note_form.html", templateData{
		AuthenticatedUser: authenticatedUser(r),
		Form:              forms.NoteForm{Errors: forms.Errors{}},
		FormAction:        fmt.Sprintf("/users/%s/notes/new", owner),
	})
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	owner := chi.URLParam(r, "username")

	form := forms.ParseNote(r)
	if !form.Validate() {
		h.render(w, r, http.StatusUnprocessableEntity, "note_form.html", templateData{
			AuthenticatedUser: authenticatedUser(r),
			Form:              form,
			FormAction:        fmt.Sprintf("/users/%s/notes/new", owner),
		})
		return
	}

	if _, err := h.services.NotesService.AddNote(ctx, owner, form.Title, form.Content); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users/"+owner, http.StatusSeeOther)
}

func (h *Handler) editNoteForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	note, err := h.services.NotesService.NoteForEdit(ctx, id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, "note_form.html", templateData{
		AuthenticatedUser: authenticatedUser(r),
		Form:              forms.NoteForm{Title: note.Title, Content: note.Content, Errors: forms.Errors{}},
		FormAction:        fmt.Sprintf("/notes/%d/update", note.ID),
	})
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	form := forms.ParseNote(r)
	if !form.Validate() {
		h.render(w, r, http.StatusUnprocessableEntity, "note_form.html", templateData{
			AuthenticatedUser: authenticatedUser(r),
			Form:              form,
			FormAction:        fmt.Sprintf("/notes/%d/update", id),
		})
		return
	}

	note, err := h.services.NotesService.EditNote(ctx, id, form.Title, form.Content)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	http.Redirect(w, r, "/users/"+note.Owner, http.StatusSeeOther)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.noteID(w, r)
	if !ok {
		return
	}

	if err := h.services.NotesService.DeleteNote(ctx, id); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	username, _ := utils.GetSessionUserFromContext(ctx)
	http.Redirect(w, r, "/users/"+username, http.StatusSeeOther)
}

// noteID parses the {id} route parameter. A non-numeric id gets a 404, same
// as an id that points at nothing.
func (h *Handler) noteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		h.notFound(w, r)
		return 0, false
	}
	return id, true
}
