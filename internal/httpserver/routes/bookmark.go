package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/httpserver/handlers"
	"github.com/tagmark/tagmark/internal/httpserver/mw"
)

func init() { Register(registerBookmark) }

func registerBookmark(r chi.Router, d deps.Deps) {
	sub := r.With(mw.BasicAuth(d.Users, d.Logger))

	sub.Get("/api/bookmark/{id}", handlers.GetBookmark(d))
	sub.Post("/api/bookmark", handlers.SaveBookmark(d))
	sub.Delete("/api/bookmark/{id}", handlers.DeleteBookmark(d))
}
