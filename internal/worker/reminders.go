package worker

import (
	"context"
	"time"

	"crm-be/internal/logger"

	"go.uber.org/zap"
)

const reminderWindow = 7 * 24 * time.Hour

const remindersQuery = `
query ($since: Time) {
  orders(filter: { orderDateGte: $since }, sort: { field: ORDER_DATE, direction: ASC }, limit: 100) {
    id
    orderDate
    totalAmount
    customer {
      email
    }
  }
}`

type Reminders struct {
	client *Client
}

func NewReminders(client *Client) *Reminders {
	return &Reminders{client: client}
}

// Run logs a reminder for every order placed within the last week and
// returns how many were processed.
func (r *Reminders) Run(ctx context.Context) (int, error) {
	log := logger.Job("order_reminders")

	since := time.Now().Add(-reminderWindow)

	var data struct {
		Orders []struct {
			ID          string    `json:"id"`
			OrderDate   time.Time `json:"orderDate"`
			TotalAmount float64   `json:"totalAmount"`
			Customer    *struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"orders"`
	}

	err := r.client.Execute(ctx, remindersQuery, map[string]any{
		"since": since.Format(time.RFC3339),
	}, &data)
	if err != nil {
		log.Error("reminder query failed", zap.Error(err))
		return 0, err
	}

	for _, o := range data.Orders {
		email := ""
		if o.Customer != nil {
			email = o.Customer.Email
		}
		log.Info("order reminder",
			zap.String("order_id", o.ID),
			zap.String("customer_email", email),
			zap.Float64("total_amount", o.TotalAmount),
			zap.Time("order_date", o.OrderDate),
		)
	}

	log.Info("order reminders processed", zap.Int("count", len(data.Orders)))
	return len(data.Orders), nil
}
