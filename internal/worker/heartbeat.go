package worker

import (
	"context"

	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type HeartbeatStatus string

const (
	StatusHealthy   HeartbeatStatus = "HEALTHY"
	StatusUnhealthy HeartbeatStatus = "UNHEALTHY"
	StatusError     HeartbeatStatus = "ERROR"
)

type Heartbeat struct {
	client *Client
}

func NewHeartbeat(client *Client) *Heartbeat {
	return &Heartbeat{client: client}
}

// Run confirms the CRM API answers the hello query with the expected
// greeting and logs the liveness line.
func (h *Heartbeat) Run(ctx context.Context) HeartbeatStatus {
	log := logger.Job("heartbeat")

	var data struct {
		Hello string `json:"hello"`
	}
	if err := h.client.Execute(ctx, "query { hello }", nil, &data); err != nil {
		log.Error("heartbeat query failed", zap.Error(err))
		return StatusError
	}

	if data.Hello != "Hello, GraphQL!" {
		log.Warn("unexpected hello response", zap.String("hello", data.Hello))
		return StatusUnhealthy
	}

	log.Info("CRM is alive")
	return StatusHealthy
}
