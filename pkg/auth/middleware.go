package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rentix/rentix/pkg/utils"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UsernameKey ContextKey = "username"
	RoleKey     ContextKey = "role"
)

// Middleware guards routes with a bearer token. Bad or absent tokens are
// answered with 403, never distinguishing the reason.
func (s *JWTService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := s.ValidateToken(token)
		if err != nil {
			utils.RespondWithError(w, http.StatusForbidden, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user id, or 0 when the
// request did not pass the middleware.
func UserIDFromContext(ctx context.Context) int {
	id, _ := ctx.Value(UserIDKey).(int)
	return id
}
