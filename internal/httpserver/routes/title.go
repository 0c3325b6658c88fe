package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/httpserver/handlers"
	"github.com/tagmark/tagmark/internal/httpserver/mw"
)

func init() { Register(registerTitle) }

func registerTitle(r chi.Router, d deps.Deps) {
	r.With(mw.BasicAuth(d.Users, d.Logger)).Post("/api/title", handlers.Title(d))
}
