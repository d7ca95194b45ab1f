package graph

import (
	"context"
	"testing"
	"time"

	"crm-be/internal/customer"
	"crm-be/internal/graph/model"
	"crm-be/internal/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, customerID uint, productIDs []uint, orderDate *time.Time) (order.Order, error) {
	args := m.Called(ctx, customerID, productIDs, orderDate)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderService) List(ctx context.Context, filter *model.OrderFilterInput, sort *model.OrderSortInput, limit, page *int32) ([]*order.Order, error) {
	args := m.Called(ctx, filter, sort, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderService) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Tests ---

func TestMutationResolver_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with customer attached", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		mockCustomers := new(MockCustomerService)
		resolver := &Resolver{OrderSvc: mockOrders, CustomerSvc: mockCustomers}
		mr := &mutationResolver{resolver}

		mockOrders.On("Create", ctx, uint(1), []uint{10, 11}, (*time.Time)(nil)).
			Return(order.Order{
				ID:          5,
				CustomerID:  1,
				TotalAmount: decimal.RequireFromString("1019.98"),
				Items: []order.OrderItem{
					{ID: 1, OrderID: 5, ProductID: 10, ProductName: "Laptop", Quantity: 1, UnitPrice: decimal.RequireFromString("999.99")},
					{ID: 2, OrderID: 5, ProductID: 11, ProductName: "Mouse", Quantity: 1, UnitPrice: decimal.RequireFromString("19.99")},
				},
			}, nil)
		mockCustomers.On("GetByID", ctx, uint(1)).
			Return(&customer.Customer{ID: 1, Name: "Alice"}, nil)

		res, err := mr.CreateOrder(ctx, model.OrderInput{
			CustomerID: "1",
			ProductIds: []string{"10", "11"},
		})

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Order created successfully", *res.Message)
		require.NotNil(t, res.Order)
		assert.InDelta(t, 1019.98, res.Order.TotalAmount, 0.001)
		require.Len(t, res.Order.Items, 2)
		assert.Equal(t, "Laptop", res.Order.Items[0].ProductName)
		require.NotNil(t, res.Order.Customer)
		assert.Equal(t, "Alice", res.Order.Customer.Name)
		mockOrders.AssertExpectations(t)
	})

	t.Run("Unknown customer stays inside the envelope", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		resolver := &Resolver{OrderSvc: mockOrders}
		mr := &mutationResolver{resolver}

		mockOrders.On("Create", ctx, uint(99), []uint{10}, (*time.Time)(nil)).
			Return(order.Order{}, &order.CustomerNotFoundError{ID: 99})

		res, err := mr.CreateOrder(ctx, model.OrderInput{
			CustomerID: "99",
			ProductIds: []string{"10"},
		})

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"Customer with ID 99 does not exist"}, res.Errors)
	})

	t.Run("All invalid product ids reported together", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		resolver := &Resolver{OrderSvc: mockOrders}
		mr := &mutationResolver{resolver}

		mockOrders.On("Create", ctx, uint(1), []uint{10, 98, 99}, (*time.Time)(nil)).
			Return(order.Order{}, &order.InvalidProductsError{IDs: []string{"98", "99"}})

		res, err := mr.CreateOrder(ctx, model.OrderInput{
			CustomerID: "1",
			ProductIds: []string{"10", "98", "99"},
		})

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"Invalid product IDs: 98, 99"}, res.Errors)
	})

	t.Run("Empty product list rejected", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		resolver := &Resolver{OrderSvc: mockOrders}
		mr := &mutationResolver{resolver}

		mockOrders.On("Create", ctx, uint(1), []uint{}, (*time.Time)(nil)).
			Return(order.Order{}, order.ErrNoProducts)

		res, err := mr.CreateOrder(ctx, model.OrderInput{CustomerID: "1"})

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"At least one product is required"}, res.Errors)
	})

	t.Run("Non-numeric product id rejected before the service", func(t *testing.T) {
		mockOrders := new(MockOrderService)
		resolver := &Resolver{OrderSvc: mockOrders}
		mr := &mutationResolver{resolver}

		res, err := mr.CreateOrder(ctx, model.OrderInput{
			CustomerID: "1",
			ProductIds: []string{"abc"},
		})

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"Invalid product IDs: abc"}, res.Errors)
		mockOrders.AssertNotCalled(t, "Create")
	})
}

func TestQueryResolver_TotalRevenue(t *testing.T) {
	ctx := context.Background()

	mockOrders := new(MockOrderService)
	resolver := &Resolver{OrderSvc: mockOrders}
	qr := &queryResolver{resolver}

	mockOrders.On("TotalRevenue", ctx).Return(decimal.RequireFromString("1234.50"), nil)

	total, err := qr.TotalRevenue(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1234.50, total, 0.001)
}
