package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tagmark/tagmark/internal/httpserver/deps"
	"github.com/tagmark/tagmark/internal/httpserver/handlers"
	"github.com/tagmark/tagmark/internal/httpserver/mw"
)

func init() { Register(registerListing) }

func registerListing(r chi.Router, d deps.Deps) {
	sub := r.With(mw.BasicAuth(d.Users, d.Logger), mw.Session(d.Sessions))

	sub.Get("/api/bookmarks", handlers.Listing(d))
	sub.Post("/api/search", handlers.Search(d))
	sub.Post("/api/selection/clear", handlers.ClearSelection(d))
	sub.Get("/api/tags", handlers.Tags(d))
}
