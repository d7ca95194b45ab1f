package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold is the stock level below which a product qualifies for
// restocking.
const LowStockThreshold = 10

// DefaultRestockAmount is used when the caller does not override it.
const DefaultRestockAmount = 10

type Product struct {
	ID          uint
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewProduct struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
}

func (p Product) LowStock() bool {
	return p.Stock < LowStockThreshold
}
