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
	router.Use(middleware.Compress(5, "application/json"))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.requireSession)

		r.Post("/api/account", h.deleteAccount)

		r.Get("/api/todos", h.listTodos)
		r.Post("/api/todos", h.addTodo)
		r.Put("/api/todos/{id}/complete", h.completeTodo)
		r.Delete("/api/todos/{id}", h.deleteTodo)

		r.Get("/api/notes", h.listNotes)
		r.Post("/api/notes", h.addNote)
		r.Get("/api/notes/{id}", h.getNote)
		r.Put("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
