package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	service := NewJWTService("test-secret")
	validToken, err := service.GenerateJWT(42, "testuser", "user", time.Now().Add(time.Hour))
	assert.NoError(t, err)

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
		expectedUser int
	}{
		{
			name:         "Valid bearer token",
			authHeader:   "Bearer " + validToken,
			expectedCode: http.StatusOK,
			expectedUser: 42,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Not a bearer header",
			authHeader:   "Basic abc",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "Invalid token",
			authHeader:   "Bearer not.a.token",
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser int
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/usuarios/profile", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			service.Middleware(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedUser, gotUser)
			}
		})
	}
}
