package order

import (
	"context"
	"time"

	"crm-be/internal/graph/model"

	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, customerID uint, productIDs []uint, orderDate *time.Time) (Order, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, filter *model.OrderFilterInput, sortInput *model.OrderSortInput, limit, page *int32) ([]*Order, error)
	Count(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// collapseLines folds repeated product ids into a single line with the summed
// quantity, keeping the first-seen order of the ids.
func collapseLines(productIDs []uint) []OrderLine {
	var lines []OrderLine
	index := map[uint]int{}

	for _, id := range productIDs {
		if i, ok := index[id]; ok {
			lines[i].Quantity++
			continue
		}
		index[id] = len(lines)
		lines = append(lines, OrderLine{ProductID: id, Quantity: 1})
	}

	return lines
}

func (s *service) Create(ctx context.Context, customerID uint, productIDs []uint, orderDate *time.Time) (Order, error) {
	if len(productIDs) == 0 {
		return Order{}, ErrNoProducts
	}

	return s.repo.Create(ctx, CreateOrderParams{
		CustomerID: customerID,
		Lines:      collapseLines(productIDs),
		OrderDate:  orderDate,
	})
}

func (s *service) GetByID(ctx context.Context, id uint) (*Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(
	ctx context.Context,
	filter *model.OrderFilterInput,
	sortInput *model.OrderSortInput,
	limit, page *int32,
) ([]*Order, error) {
	return s.repo.List(ctx, filter, sortInput, limit, page)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *service) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return s.repo.TotalRevenue(ctx)
}
