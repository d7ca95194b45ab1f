package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-be/internal/user"
	"crm-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	t.Run("Valid token populates context", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		token, err := user.GenerateJWT(5, "ADMIN", "admin@crm.local")
		require.NoError(t, err)

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := utils.GetUserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, uint(5), id)
			assert.Equal(t, "ADMIN", utils.GetUserRoleFromContext(r.Context()))
		})

		req := httptest.NewRequest("POST", "/graphql", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)
	})

	t.Run("Missing token passes through anonymously", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
		})

		req := httptest.NewRequest("POST", "/graphql", nil)
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)
	})

	t.Run("Invalid token passes through anonymously", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := utils.GetUserIDFromContext(r.Context())
			assert.False(t, ok)
		})

		req := httptest.NewRequest("POST", "/graphql", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(w, req)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RateLimitMiddleware(next)

	t.Run("Allows requests within burst", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/graphql", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Rejects past strict burst", func(t *testing.T) {
		var lastCode int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest("POST", "/graphql", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			req.Header.Set("X-Action", "auth")
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)
			lastCode = w.Code
		}
		assert.Equal(t, http.StatusTooManyRequests, lastCode)
	})
}

func TestResolveRateTier(t *testing.T) {
	t.Run("Worker tier", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/graphql", nil)
		req.Header.Set("X-Client-Type", "worker")

		_, _, tier := resolveRateTier(req)
		assert.Equal(t, "internal", tier)
	})

	t.Run("Auth tier", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/graphql", nil)
		req.Header.Set("X-Action", "auth")

		_, _, tier := resolveRateTier(req)
		assert.Equal(t, "strict", tier)
	})

	t.Run("Default tier", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/graphql", nil)

		_, _, tier := resolveRateTier(req)
		assert.Equal(t, "general", tier)
	})
}
