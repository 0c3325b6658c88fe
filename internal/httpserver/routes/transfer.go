package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/httpserver/handlers"
	"github.com/tagmark/tagmark/internal/httpserver/mw"
)

func init() { Register(registerTransfer) }

func registerTransfer(r chi.Router, d deps.Deps) {
	sub := r.With(mw.BasicAuth(d.Users, d.Logger))

	sub.Post("/api/bookmarks/upload", handlers.Upload(d))
	sub.Get("/api/bookmarks/dump", handlers.Dump(d))
}
