package graph

import (
	"context"
	"fmt"

	"crm-be/internal/graph/model"
	"crm-be/internal/logger"
	"crm-be/internal/metrics"
	"crm-be/internal/utils"

	"go.uber.org/zap"
)

// CreateProduct is the resolver for the createProduct field.
func (r *mutationResolver) CreateProduct(ctx context.Context, input model.ProductInput) (*model.ProductResponse, error) {
	log := logger.FromCtx(ctx)
	timer := metrics.StartTimer()

	p, err := r.ProductSvc.Create(ctx, MapProductInput(input))
	if err != nil {
		return &model.ProductResponse{
			Success: false,
			Message: utils.StrPtr("Validation failed"),
			Errors:  []string{err.Error()},
		}, nil
	}

	metrics.ProductsCreated.Inc()
	log.Info("product created",
		zap.String("product_id", fmt.Sprint(p.ID)),
		zap.Uint64("products_created_total", metrics.ProductsCreated.Load()),
		zap.Duration("took", timer.Duration()),
	)

	return &model.ProductResponse{
		Success: true,
		Message: utils.StrPtr("Product created successfully"),
		Product: MapProductToGraphQL(&p),
		Errors:  []string{},
	}, nil
}

// UpdateLowStockProducts is the resolver for the updateLowStockProducts
// field. Restricted to admins by the @auth directive.
func (r *mutationResolver) UpdateLowStockProducts(ctx context.Context, restockAmount int32) (*model.LowStockUpdateResponse, error) {
	log := logger.FromCtx(ctx)
	timer := metrics.StartTimer()

	updated, skipped, err := r.ProductSvc.RestockLowStock(ctx, int(restockAmount))
	if err != nil {
		return &model.LowStockUpdateResponse{
			Success:  false,
			Message:  utils.StrPtr("Validation failed"),
			Products: []*model.Product{},
			Errors:   []string{err.Error()},
		}, nil
	}

	if skipped == nil {
		skipped = []string{}
	}

	if len(updated) == 0 {
		return &model.LowStockUpdateResponse{
			Success:  true,
			Message:  utils.StrPtr("No low-stock products found"),
			Products: []*model.Product{},
			Errors:   skipped,
		}, nil
	}

	metrics.RestocksApplied.Add(uint64(len(updated)))
	log.Info("low-stock products restocked",
		zap.Int("updated", len(updated)),
		zap.Int("skipped", len(skipped)),
		zap.Duration("took", timer.Duration()),
	)

	products := make([]*model.Product, 0, len(updated))
	for i := range updated {
		products = append(products, MapProductToGraphQL(&updated[i]))
	}

	return &model.LowStockUpdateResponse{
		Success:  true,
		Message:  utils.StrPtr(fmt.Sprintf("Successfully updated %d low-stock products", len(updated))),
		Products: products,
		Errors:   skipped,
	}, nil
}

// Product is the resolver for the product field.
func (r *queryResolver) Product(ctx context.Context, id string) (*model.Product, error) {
	pid, err := utils.ToUint(id)
	if err != nil {
		return nil, nil
	}

	p, err := r.ProductSvc.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	return MapProductToGraphQL(p), nil
}

// Products is the resolver for the products field.
func (r *queryResolver) Products(
	ctx context.Context,
	filter *model.ProductFilterInput,
	sort *model.ProductSortInput,
	limit, page *int32,
) ([]*model.Product, error) {
	products, err := r.ProductSvc.List(ctx, filter, sort, limit, page)
	if err != nil {
		return nil, err
	}

	return MapProductsToGraphQL(products), nil
}

// ProductCount is the resolver for the productCount field.
func (r *queryResolver) ProductCount(ctx context.Context) (int32, error) {
	n, err := r.ProductSvc.Count(ctx)
	return int32(n), err
}
