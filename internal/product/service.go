package product

import (
	"context"
	"strings"

	"crm-be/internal/graph/model"
	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input NewProduct) (Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter *model.ProductFilterInput, sortInput *model.ProductSortInput, limit, page *int32) ([]*Product, error)
	RestockLowStock(ctx context.Context, amount int) ([]Product, []string, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateInput(input NewProduct) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrNameRequired
	}
	if !input.Price.IsPositive() {
		return ErrInvalidPrice
	}
	if input.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

func (s *service) Create(ctx context.Context, input NewProduct) (Product, error) {
	if err := validateInput(input); err != nil {
		return Product{}, err
	}
	return s.repo.Create(ctx, input)
}

func (s *service) GetByID(ctx context.Context, id uint) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(
	ctx context.Context,
	filter *model.ProductFilterInput,
	sortInput *model.ProductSortInput,
	limit, page *int32,
) ([]*Product, error) {
	return s.repo.List(ctx, filter, sortInput, limit, page)
}

func (s *service) RestockLowStock(ctx context.Context, amount int) ([]Product, []string, error) {
	if amount <= 0 {
		return nil, nil, ErrInvalidRestockAmount
	}

	updated, skipped, err := s.repo.RestockLowStock(ctx, amount)
	if err != nil {
		logger.FromCtx(ctx).Error("restock failed", zap.Error(err))
		return nil, nil, err
	}
	return updated, skipped, nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
