package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type contextKey string

const callerIDKey contextKey = "caller_id"

// AuthMiddleware protects a subrouter with bearer-token authentication. It
// verifies the token, resolves the caller's user id from the subject claim
// and stores it in the request context; requests without a valid credential
// never reach a handler.
func AuthMiddleware(issuer *TokenIssuer) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, Unauthorized("authorization required"))
				return
			}

			// header = Bearer <token>
			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, Unauthorized("invalid authorization header"))
				return
			}

			claims, err := issuer.Verify(parts[1])
			if err != nil {
				WriteError(w, Unauthorized("invalid token"))
				return
			}

			callerID, err := claims.UserID()
			if err != nil {
				WriteError(w, Unauthorized("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), callerIDKey, callerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerID returns the authenticated user id placed in the context by
// AuthMiddleware. Handlers read it once and pass it to services as an
// explicit argument.
func CallerID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(callerIDKey).(uint)
	return id, ok
}

// WithCallerID is used by handler tests to simulate an authenticated request.
func WithCallerID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, callerIDKey, id)
}
