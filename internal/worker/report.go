package worker

import (
	"context"

	"crm-be/internal/logger"

	"go.uber.org/zap"
)

const reportQuery = `
query {
  customerCount
  orderCount
  productCount
  totalRevenue
  products(filter: { lowStock: true }, limit: 100) {
    id
    name
    stock
  }
}`

type ReportSummary struct {
	CustomerCount    int     `json:"customerCount"`
	OrderCount       int     `json:"orderCount"`
	ProductCount     int     `json:"productCount"`
	TotalRevenue     float64 `json:"totalRevenue"`
	LowStockProducts int     `json:"-"`
}

type Report struct {
	client *Client
}

func NewReport(client *Client) *Report {
	return &Report{client: client}
}

// Run gathers the weekly CRM totals and logs them.
func (r *Report) Run(ctx context.Context) (*ReportSummary, error) {
	log := logger.Job("weekly_report")

	var data struct {
		CustomerCount int     `json:"customerCount"`
		OrderCount    int     `json:"orderCount"`
		ProductCount  int     `json:"productCount"`
		TotalRevenue  float64 `json:"totalRevenue"`
		Products      []struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Stock int32  `json:"stock"`
		} `json:"products"`
	}

	if err := r.client.Execute(ctx, reportQuery, nil, &data); err != nil {
		log.Error("report query failed", zap.Error(err))
		return nil, err
	}

	summary := &ReportSummary{
		CustomerCount:    data.CustomerCount,
		OrderCount:       data.OrderCount,
		ProductCount:     data.ProductCount,
		TotalRevenue:     data.TotalRevenue,
		LowStockProducts: len(data.Products),
	}

	log.Info("weekly report",
		zap.Int("customers", summary.CustomerCount),
		zap.Int("orders", summary.OrderCount),
		zap.Int("products", summary.ProductCount),
		zap.Int("low_stock_products", summary.LowStockProducts),
		zap.Float64("total_revenue", summary.TotalRevenue),
	)

	return summary, nil
}
