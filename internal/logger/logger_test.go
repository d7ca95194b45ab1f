package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFrom(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFrom(ctx))
}

func TestFromCtx(t *testing.T) {
	t.Run("Without request id", func(t *testing.T) {
		assert.NotNil(t, FromCtx(context.Background()))
	})

	t.Run("With request id", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-456")
		assert.NotNil(t, FromCtx(ctx))
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("Generates ID when missing", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, RequestIDFrom(r.Context()))
		})

		req := httptest.NewRequest("GET", "/graphql", nil)
		w := httptest.NewRecorder()

		RequestIDMiddleware(next).ServeHTTP(w, req)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("Preserves existing ID", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "incoming-id", RequestIDFrom(r.Context()))
		})

		req := httptest.NewRequest("GET", "/graphql", nil)
		req.Header.Set("X-Request-ID", "incoming-id")
		w := httptest.NewRecorder()

		RequestIDMiddleware(next).ServeHTTP(w, req)
		assert.Equal(t, "incoming-id", w.Header().Get("X-Request-ID"))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	t.Run("Passes response through", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		})

		req := httptest.NewRequest("POST", "/graphql", nil)
		w := httptest.NewRecorder()

		LoggingMiddleware(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "short and stout", w.Body.String())
	})

	t.Run("Implicit 200 recorded", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		rec := &statusRecorder{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
		next.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
		assert.Equal(t, http.StatusOK, rec.status)
	})
}

func TestJob(t *testing.T) {
	assert.NotNil(t, Job("heartbeat"))
}
