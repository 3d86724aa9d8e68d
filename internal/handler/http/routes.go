package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withSession)

	// routes reachable without an authenticated session
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/register", h.registerForm)
		r.Post("/register", h.register)
		r.Get("/login", h.loginForm)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
	})

	// routes requiring an authenticated session
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Get("/users/{username}", h.profile)
		r.Post("/users/{username}/delete", h.deleteUser)
		r.Get("/users/{username}/notes/new", h.newNoteForm)
		r.Post("/users/{username}/notes/new", h.createNote)
		r.Get("/notes/{id}/update", h.editNoteForm)
		r.Post("/notes/{id}/update", h.updateNote)
		r.Post("/notes/{id}/delete", h.deleteNote)
	})

	return router
}
