package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/forms"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// home sends anonymous visitors to the registration page and signed-in users
// to their own profile.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	if username, ok := utils.GetSessionUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/users/"+username, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}

	h.render(w, r, http.StatusOK, "register.html", templateData{
		Form: forms.RegisterForm{Errors: forms.Errors{}},
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}

	ctx := r.Context()
	log := logger.FromRequest(r)

	form := forms.ParseRegister(r)
	if !form.Validate() {
		h.render(w, r, http.StatusUnprocessableEntity, "register.html", templateData{Form: form})
		return
	}

	user := models.User{
		Username:  form.Username,
		Email:     form.Email,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateUser):
			// which of the two columns collided is deliberately not revealed
			log.Error().Str("username", form.Username).Msg("duplicate registration attempt")
			h.render(w, r, http.StatusUnprocessableEntity, "register.html", templateData{
				Form:    form,
				Message: "That username or email is already taken.",
			})
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.render(w, r, http.StatusUnprocessableEntity, "register.html", templateData{
				Form:    form,
				Message: "Please fill in all fields.",
			})
		default:
			h.serverError(w, r, err)
		}
		return
	}

	h.startSession(w, r, registeredUser.Username)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}

	h.render(w, r, http.StatusOK, "login.html", templateData{
		Form: forms.LoginForm{Errors: forms.Errors{}},
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if h.redirectIfAuthenticated(w, r) {
		return
	}

	ctx := r.Context()
	log := logger.FromRequest(r)

	form := forms.ParseLogin(r)
	if !form.Validate() {
		h.render(w, r, http.StatusUnprocessableEntity, "login.html", templateData{Form: form})
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, form.Username, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidDataProvided):
			// one message for unknown user and wrong password alike
			log.Error().Str("username", form.Username).Msg("rejected login attempt")
			h.render(w, r, http.StatusUnprocessableEntity, "login.html", templateData{
				Form:    form,
				Message: "Invalid username or password.",
			})
		default:
			h.serverError(w, r, err)
		}
		return
	}

	h.startSession(w, r, foundUser.Username)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if token := h.sessionToken(r); token != "" {
		if err := h.services.AuthService.Logout(ctx, token); err != nil {
			// the cookie is cleared regardless; the sweeper reclaims the row
			log.Err(err).Msg("session termination failed")
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// startSession establishes a session for username, sets the cookie and lands
// the browser on the profile page. Shared by register (auto-login) and login.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, username string) {
	session, err := h.services.AuthService.CreateSession(r.Context(), username)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	h.setSessionCookie(w, session.Token, session.ExpiresAt)
	http.Redirect(w, r, "/users/"+username, http.StatusSeeOther)
}

// redirectIfAuthenticated short-circuits the register and login pages for
// visitors who already carry a valid session, reporting whether it redirected.
func (h *Handler) redirectIfAuthenticated(w http.ResponseWriter, r *http.Request) bool {
	username, ok := utils.GetSessionUserFromContext(r.Context())
	if !ok {
		return false
	}

	http.Redirect(w, r, "/users/"+username, http.StatusSeeOther)
	return true
}
