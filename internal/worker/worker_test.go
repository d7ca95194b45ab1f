package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func graphqlStub(t *testing.T, handler func(query string, variables map[string]any) string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "worker", r.Header.Get("X-Client-Type"))

		var req graphqlRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handler(req.Query, req.Variables)))
	}))
}

func TestClient_Execute(t *testing.T) {
	t.Run("Auth token forwarded", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"hello":"Hello, GraphQL!"}}`))
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "secret-token")

		var data struct {
			Hello string `json:"hello"`
		}
		err := client.Execute(context.Background(), "query { hello }", nil, &data)
		require.NoError(t, err)
		assert.Equal(t, "Hello, GraphQL!", data.Hello)
	})

	t.Run("GraphQL errors surface", func(t *testing.T) {
		srv := graphqlStub(t, func(query string, _ map[string]any) string {
			return `{"errors":[{"message":"forbidden: admin only"}]}`
		})
		defer srv.Close()

		client := NewClient(srv.URL, "")
		err := client.Execute(context.Background(), "query { hello }", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "forbidden: admin only")
	})

	t.Run("Non-200 status surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := NewClient(srv.URL, "")
		err := client.Execute(context.Background(), "query { hello }", nil, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "502")
	})
}

func TestHeartbeat_Run(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		srv := graphqlStub(t, func(query string, _ map[string]any) string {
			return `{"data":{"hello":"Hello, GraphQL!"}}`
		})
		defer srv.Close()

		hb := NewHeartbeat(NewClient(srv.URL, ""))
		assert.Equal(t, StatusHealthy, hb.Run(context.Background()))
	})

	t.Run("Unexpected greeting is unhealthy", func(t *testing.T) {
		srv := graphqlStub(t, func(query string, _ map[string]any) string {
			return `{"data":{"hello":"nope"}}`
		})
		defer srv.Close()

		hb := NewHeartbeat(NewClient(srv.URL, ""))
		assert.Equal(t, StatusUnhealthy, hb.Run(context.Background()))
	})

	t.Run("Unreachable endpoint is an error", func(t *testing.T) {
		srv := graphqlStub(t, func(query string, _ map[string]any) string { return "{}" })
		srv.Close()

		hb := NewHeartbeat(NewClient(srv.URL, ""))
		assert.Equal(t, StatusError, hb.Run(context.Background()))
	})
}

func TestReminders_Run(t *testing.T) {
	t.Run("Counts orders in the window", func(t *testing.T) {
		srv := graphqlStub(t, func(query string, variables map[string]any) string {
			assert.Contains(t, query, "orderDateGte")
			assert.NotEmpty(t, variables["since"])
			return `{"data":{"orders":[
				{"id":"1","orderDate":"2025-03-01T12:00:00Z","customer":{"email":"alice@example.com"}},
				{"id":"2","orderDate":"2025-03-02T12:00:00Z","customer":{"email":"bob@example.com"}}
			]}}`
		})
		defer srv.Close()

		reminders := NewReminders(NewClient(srv.URL, ""))
		count, err := reminders.Run(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("Empty window", func(t *testing.T) {
		srv := graphqlStub(t, func(query string, _ map[string]any) string {
			return `{"data":{"orders":[]}}`
		})
		defer srv.Close()

		reminders := NewReminders(NewClient(srv.URL, ""))
		count, err := reminders.Run(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestReport_Run(t *testing.T) {
	srv := graphqlStub(t, func(query string, _ map[string]any) string {
		return `{"data":{
			"customerCount": 12,
			"orderCount": 30,
			"productCount": 8,
			"totalRevenue": 1234.50,
			"products": [{"id":"1","name":"Mouse","stock":3}]
		}}`
	})
	defer srv.Close()

	report := NewReport(NewClient(srv.URL, ""))
	summary, err := report.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, summary.CustomerCount)
	assert.Equal(t, 30, summary.OrderCount)
	assert.Equal(t, 8, summary.ProductCount)
	assert.Equal(t, 1, summary.LowStockProducts)
	assert.InDelta(t, 1234.50, summary.TotalRevenue, 0.001)
}

func TestRestock_Run(t *testing.T) {
	t.Run("Sends the configured amount", func(t *testing.T) {
		srv := graphqlStub(t, func(query string, variables map[string]any) string {
			assert.Contains(t, query, "updateLowStockProducts")
			assert.EqualValues(t, 10, variables["amount"])
			return `{"data":{"updateLowStockProducts":{
				"success": true,
				"message": "Successfully updated 2 low-stock products",
				"products": [{"id":"1","name":"A","stock":13},{"id":"2","name":"B","stock":17}],
				"errors": []
			}}}`
		})
		defer srv.Close()

		restock := NewRestock(NewClient(srv.URL, ""), 10)
		assert.NoError(t, restock.Run(context.Background()))
	})

	t.Run("Forbidden surfaces as an error", func(t *testing.T) {
		srv := graphqlStub(t, func(query string, _ map[string]any) string {
			return `{"errors":[{"message":"forbidden: admin only"}]}`
		})
		defer srv.Close()

		restock := NewRestock(NewClient(srv.URL, ""), 10)
		assert.Error(t, restock.Run(context.Background()))
	})
}
