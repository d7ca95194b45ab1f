package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	t.Run("From bearer header", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/graphql", nil)
		r.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "header-token", BearerToken(r))
	})

	t.Run("From session cookie", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/graphql", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})

		assert.Equal(t, "cookie-token", BearerToken(r))
	})

	t.Run("Header wins over cookie", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/graphql", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer header-token")

		assert.Equal(t, "header-token", BearerToken(r))
	})

	t.Run("Empty bearer falls back to cookie", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/graphql", nil)
		r.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
		r.Header.Set("Authorization", "Bearer ")

		assert.Equal(t, "cookie-token", BearerToken(r))
	})

	t.Run("Missing", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/graphql", nil)
		assert.Empty(t, BearerToken(r))
	})
}
