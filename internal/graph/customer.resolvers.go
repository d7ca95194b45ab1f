package graph

import (
	"context"
	"fmt"

	"crm-be/internal/customer"
	"crm-be/internal/graph/model"
	"crm-be/internal/logger"
	"crm-be/internal/metrics"
	"crm-be/internal/utils"

	"go.uber.org/zap"
)

// CreateCustomer is the resolver for the createCustomer field. Validation
// failures come back inside the response envelope, not as GraphQL errors.
func (r *mutationResolver) CreateCustomer(ctx context.Context, input model.CustomerInput) (*model.CustomerResponse, error) {
	log := logger.FromCtx(ctx)
	timer := metrics.StartTimer()

	c, err := r.CustomerSvc.Create(ctx, MapCustomerInput(input))
	if err != nil {
		return &model.CustomerResponse{
			Success: false,
			Message: utils.StrPtr("Validation failed"),
			Errors:  []string{err.Error()},
		}, nil
	}

	metrics.CustomersCreated.Inc()
	log.Info("customer created",
		zap.String("customer_id", fmt.Sprint(c.ID)),
		zap.Uint64("customers_created_total", metrics.CustomersCreated.Load()),
		zap.Duration("took", timer.Duration()),
	)

	return &model.CustomerResponse{
		Success:  true,
		Message:  utils.StrPtr("Customer created successfully"),
		Customer: MapCustomerToGraphQL(c),
		Errors:   []string{},
	}, nil
}

// BulkCreateCustomers is the resolver for the bulkCreateCustomers field. Valid
// rows are kept even when others fail; per-row errors carry the 1-based row
// number.
func (r *mutationResolver) BulkCreateCustomers(ctx context.Context, input []*model.CustomerInput) (*model.BulkCustomerResponse, error) {
	log := logger.FromCtx(ctx)
	timer := metrics.StartTimer()

	inputs := make([]customer.NewCustomer, 0, len(input))
	for _, in := range input {
		inputs = append(inputs, MapCustomerInput(*in))
	}

	created, rowErrors, err := r.CustomerSvc.BulkCreate(ctx, inputs)
	if err != nil {
		log.Error("bulk customer create aborted", zap.Error(err))
		return &model.BulkCustomerResponse{
			Success:   false,
			Message:   utils.StrPtr("Validation failed"),
			Customers: []*model.Customer{},
			Errors:    []string{err.Error()},
		}, nil
	}

	metrics.CustomersCreated.Add(uint64(len(created)))
	log.Info("bulk customer create finished",
		zap.Int("created", len(created)),
		zap.Int("failed", len(rowErrors)),
		zap.Duration("took", timer.Duration()),
	)

	customers := make([]*model.Customer, 0, len(created))
	for i := range created {
		customers = append(customers, MapCustomerToGraphQL(&created[i]))
	}
	if rowErrors == nil {
		rowErrors = []string{}
	}

	return &model.BulkCustomerResponse{
		Success:   true,
		Message:   utils.StrPtr(fmt.Sprintf("Created %d of %d customers", len(created), len(input))),
		Customers: customers,
		Errors:    rowErrors,
	}, nil
}

// Customer is the resolver for the customer field.
func (r *queryResolver) Customer(ctx context.Context, id string) (*model.Customer, error) {
	cid, err := utils.ToUint(id)
	if err != nil {
		return nil, nil
	}

	c, err := r.CustomerSvc.GetByID(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}

	return MapCustomerToGraphQL(c), nil
}

// Customers is the resolver for the customers field.
func (r *queryResolver) Customers(
	ctx context.Context,
	filter *model.CustomerFilterInput,
	sort *model.CustomerSortInput,
	limit, page *int32,
) ([]*model.Customer, error) {
	customers, err := r.CustomerSvc.List(ctx, filter, sort, limit, page)
	if err != nil {
		return nil, err
	}

	return MapCustomersToGraphQL(customers), nil
}

// CustomerCount is the resolver for the customerCount field.
func (r *queryResolver) CustomerCount(ctx context.Context) (int32, error) {
	n, err := r.CustomerSvc.Count(ctx)
	return int32(n), err
}
