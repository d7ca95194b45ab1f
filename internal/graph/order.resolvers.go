package graph

import (
	"context"
	"fmt"
	"strings"

	"crm-be/internal/graph/model"
	"crm-be/internal/logger"
	"crm-be/internal/metrics"
	"crm-be/internal/utils"

	"go.uber.org/zap"
)

// CreateOrder is the resolver for the createOrder field. Every invalid
// product id in the request is reported in one response.
func (r *mutationResolver) CreateOrder(ctx context.Context, input model.OrderInput) (*model.OrderResponse, error) {
	log := logger.FromCtx(ctx)
	timer := metrics.StartTimer()

	customerID, err := utils.ToUint(input.CustomerID)
	if err != nil {
		return &model.OrderResponse{
			Success: false,
			Message: utils.StrPtr("Validation failed"),
			Errors:  []string{fmt.Sprintf("Customer with ID %s does not exist", input.CustomerID)},
		}, nil
	}

	productIDs := make([]uint, 0, len(input.ProductIds))
	var badIDs []string
	for _, raw := range input.ProductIds {
		id, err := utils.ToUint(raw)
		if err != nil {
			badIDs = append(badIDs, raw)
			continue
		}
		productIDs = append(productIDs, id)
	}
	if len(badIDs) > 0 {
		return &model.OrderResponse{
			Success: false,
			Message: utils.StrPtr("Validation failed"),
			Errors:  []string{"Invalid product IDs: " + strings.Join(badIDs, ", ")},
		}, nil
	}

	o, err := r.OrderSvc.Create(ctx, customerID, productIDs, input.OrderDate)
	if err != nil {
		return &model.OrderResponse{
			Success: false,
			Message: utils.StrPtr("Validation failed"),
			Errors:  []string{err.Error()},
		}, nil
	}

	metrics.OrdersCreated.Inc()
	log.Info("order created",
		zap.String("order_id", fmt.Sprint(o.ID)),
		zap.Uint64("orders_created_total", metrics.OrdersCreated.Load()),
		zap.Duration("took", timer.Duration()),
	)

	resp := MapOrderToGraphQL(&o)
	if c, err := r.CustomerSvc.GetByID(ctx, o.CustomerID); err == nil && c != nil {
		resp.Customer = MapCustomerToGraphQL(c)
	}

	return &model.OrderResponse{
		Success: true,
		Message: utils.StrPtr("Order created successfully"),
		Order:   resp,
		Errors:  []string{},
	}, nil
}

// Order is the resolver for the order field.
func (r *queryResolver) Order(ctx context.Context, id string) (*model.Order, error) {
	oid, err := utils.ToUint(id)
	if err != nil {
		return nil, nil
	}

	o, err := r.OrderSvc.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}

	resp := MapOrderToGraphQL(o)
	if c, err := r.CustomerSvc.GetByID(ctx, o.CustomerID); err == nil && c != nil {
		resp.Customer = MapCustomerToGraphQL(c)
	}

	return resp, nil
}

// Orders is the resolver for the orders field.
func (r *queryResolver) Orders(
	ctx context.Context,
	filter *model.OrderFilterInput,
	sort *model.OrderSortInput,
	limit, page *int32,
) ([]*model.Order, error) {
	orders, err := r.OrderSvc.List(ctx, filter, sort, limit, page)
	if err != nil {
		return nil, err
	}

	result := MapOrdersToGraphQL(orders)

	// Attach customers, fetching each one once per page.
	cached := map[uint]*model.Customer{}
	for i, o := range orders {
		mc, ok := cached[o.CustomerID]
		if !ok {
			if c, err := r.CustomerSvc.GetByID(ctx, o.CustomerID); err == nil && c != nil {
				mc = MapCustomerToGraphQL(c)
			}
			cached[o.CustomerID] = mc
		}
		result[i].Customer = mc
	}

	return result, nil
}

// OrderCount is the resolver for the orderCount field.
func (r *queryResolver) OrderCount(ctx context.Context) (int32, error) {
	n, err := r.OrderSvc.Count(ctx)
	return int32(n), err
}

// TotalRevenue is the resolver for the totalRevenue field.
func (r *queryResolver) TotalRevenue(ctx context.Context) (float64, error) {
	total, err := r.OrderSvc.TotalRevenue(ctx)
	if err != nil {
		return 0, err
	}
	return total.InexactFloat64(), nil
}
