package worker

import (
	"context"

	"crm-be/internal/logger"

	"go.uber.org/zap"
)

const restockMutation = `
mutation ($amount: Int!) {
  updateLowStockProducts(restockAmount: $amount) {
    success
    message
    products {
      id
      name
      stock
    }
    errors
  }
}`

type Restock struct {
	client *Client
	amount int
}

func NewRestock(client *Client, amount int) *Restock {
	return &Restock{client: client, amount: amount}
}

// Run triggers the low-stock restock mutation. The client must carry an
// admin token or the API rejects the call.
func (r *Restock) Run(ctx context.Context) error {
	log := logger.Job("low_stock_restock")

	var data struct {
		UpdateLowStockProducts struct {
			Success  bool     `json:"success"`
			Message  *string  `json:"message"`
			Errors   []string `json:"errors"`
			Products []struct {
				ID    string `json:"id"`
				Name  string `json:"name"`
				Stock int32  `json:"stock"`
			} `json:"products"`
		} `json:"updateLowStockProducts"`
	}

	err := r.client.Execute(ctx, restockMutation, map[string]any{"amount": r.amount}, &data)
	if err != nil {
		log.Error("restock mutation failed", zap.Error(err))
		return err
	}

	result := data.UpdateLowStockProducts
	message := ""
	if result.Message != nil {
		message = *result.Message
	}

	log.Info("restock finished",
		zap.Bool("success", result.Success),
		zap.String("message", message),
		zap.Int("updated", len(result.Products)),
		zap.Strings("errors", result.Errors),
	)

	return nil
}
