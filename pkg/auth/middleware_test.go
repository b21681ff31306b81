package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name         string
		authHeader   func() string
		expectedCode int
	}{
		{
			name: "Valid bearer token",
			authHeader: func() string {
				token, _ := jwtService.GenerateJWT(7, "child", time.Now().Add(time.Hour))
				return "Bearer " + token
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			authHeader:   func() string { return "" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Malformed header",
			authHeader:   func() string { return "Token abc" },
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Garbage token",
			authHeader:   func() string { return "Bearer not.a.token" },
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			var gotRole string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = r.Context().Value(UserIDKey).(int)
				gotRole, _ = r.Context().Value(RoleKey).(string)
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if h := tt.authHeader(); h != "" {
				r.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()

			AuthMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, 7, gotUserID)
				assert.Equal(t, "child", gotRole)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	jwtService := &JWTService{}

	tests := []struct {
		name         string
		tokenRole    string
		requiredRole string
		expectedCode int
	}{
		{
			name:         "Role matches",
			tokenRole:    "parent",
			requiredRole: "parent",
			expectedCode: http.StatusOK,
		},
		{
			name:         "Role mismatch",
			tokenRole:    "child",
			requiredRole: "parent",
			expectedCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			token, _ := jwtService.GenerateJWT(1, tt.tokenRole, time.Now().Add(time.Hour))
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()

			AuthMiddleware(RequireRole(tt.requiredRole)(next)).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
