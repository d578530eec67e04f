package http

import (
	"net/http"

	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/pkg/httpx"
)

// AuthGate resolves the bearer token to a user before the handler runs. The
// resolved identity lands in the request context; every failure mode is the
// same 401 so callers learn nothing about why a token was rejected.
func AuthGate(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := httpx.BearerToken(r)
			if token == "" {
				httpx.WriteBearerError(w, "missing bearer token")
				return
			}

			user, err := auth.CurrentUser(r.Context(), token)
			if err != nil {
				httpx.WriteBearerError(w, "the access token is missing, invalid or expired")
				return
			}

			ctx := httpx.WithUser(r.Context(), user.ID, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
