package mw

import (
	"context"
	"net/http"
	"strings"

	"github.com/tagmark/tagmark/internal/auth"
	"github.com/tagmark/tagmark/internal/logger"
)

type ownerCtxKey struct{}

// BasicAuth returns a middleware enforcing HTTP basic auth against the
// users file. The authenticated name becomes the request's owner,
// lowercased so it lines up with bookmark identity.
func BasicAuth(users *auth.Users, loggerClient logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name, password, ok := r.BasicAuth()
			if !ok || !users.Authenticate(name, password) {
				if name != "" {
					loggerClient.Warn("rejected credentials",
						logger.String("user", name),
						logger.String("remote_ip", r.RemoteAddr))
				}
				w.Header().Set("WWW-Authenticate", `Basic realm="tagmark"`)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			owner := strings.ToLower(name)
			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), ownerCtxKey{}, owner)))
		})
	}
}

// Owner returns the authenticated owner stored by BasicAuth, empty when
// the request never went through it.
func Owner(ctx context.Context) string {
	owner, _ := ctx.Value(ownerCtxKey{}).(string)
	return owner
}
