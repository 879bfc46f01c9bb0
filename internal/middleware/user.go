package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const userIDKey contextKey = "userID"

// UserIDHeader identifies the user on whose behalf a request is made
//
// Authentication happens upstream; the gateway forwards the authenticated user id here.
const UserIDHeader = "X-User-ID"

// UserMiddleware puts the caller's user id into the request context
//
// A missing or malformed id leaves the request anonymous. Anonymous requests are served
// with empty reads and unsaved writes rather than rejected.
func UserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, id.String())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID retrieves the user ID from context, or "" for anonymous requests
func GetUserID(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey).(string); ok {
		return id
	}
	return ""
}
