package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SessionCookieName correlates anonymous reservation holds with a browser.
const SessionCookieName = "sessionId"

// SessionTTL is the cookie lifetime. It is intentionally longer than the
// 15-minute hold expiry in the pending store; the two windows are not
// reconciled (see DESIGN.md).
const SessionTTL = 20 * time.Minute

const SessionIDKey ContextKey = "sessionID"

// SessionMiddleware issues an httpOnly UUID cookie on first contact and
// puts the session id on the request context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
			sessionID = c.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(SessionTTL / time.Second),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), SessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionIDFromContext returns the session cookie value, or "" when the
// middleware did not run.
func SessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
