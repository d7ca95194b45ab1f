package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint
	CustomerID  uint
	TotalAmount decimal.Decimal
	OrderDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Items       []OrderItem
}

type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   uint
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// OrderLine is one product slot in a new order. The service collapses
// repeated product ids into a single line with a higher quantity.
type OrderLine struct {
	ProductID uint
	Quantity  int
}

type CreateOrderParams struct {
	CustomerID uint
	Lines      []OrderLine
	OrderDate  *time.Time
}
