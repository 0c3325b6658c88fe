package mw

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/tagmark/tagmark/internal/session"
)

// SessionCookie carries the session id between requests.
const SessionCookie = "tagmark_session"

type selectionCtxKey struct{}

// Session returns a middleware that resolves the request's Selection
// from the registry, minting a new session cookie when none is present.
func Session(registry *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(SessionCookie); err == nil {
				id = c.Value
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookie,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			sel := registry.Get(id)
			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), selectionCtxKey{}, sel)))
		})
	}
}

// Selection returns the request's selection state stored by Session,
// nil when the request never went through it.
func Selection(ctx context.Context) *session.Selection {
	sel, _ := ctx.Value(selectionCtxKey{}).(*session.Selection)
	return sel
}
