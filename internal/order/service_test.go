package order

import (
	"context"
	"testing"
	"time"

	"crm-be/internal/graph/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, params CreateOrderParams) (Order, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(Order), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter *model.OrderFilterInput, sort *model.OrderSortInput, limit, page *int32) ([]*Order, error) {
	args := m.Called(ctx, filter, sort, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Tests ---

func TestCollapseLines(t *testing.T) {
	t.Run("Distinct ids keep quantity one", func(t *testing.T) {
		lines := collapseLines([]uint{3, 1, 2})
		require.Len(t, lines, 3)
		assert.Equal(t, OrderLine{ProductID: 3, Quantity: 1}, lines[0])
		assert.Equal(t, OrderLine{ProductID: 1, Quantity: 1}, lines[1])
		assert.Equal(t, OrderLine{ProductID: 2, Quantity: 1}, lines[2])
	})

	t.Run("Repeated ids fold into quantity, first-seen order kept", func(t *testing.T) {
		lines := collapseLines([]uint{2, 1, 2, 2, 1})
		require.Len(t, lines, 2)
		assert.Equal(t, OrderLine{ProductID: 2, Quantity: 3}, lines[0])
		assert.Equal(t, OrderLine{ProductID: 1, Quantity: 2}, lines[1])
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		expected := CreateOrderParams{
			CustomerID: 1,
			Lines: []OrderLine{
				{ProductID: 10, Quantity: 1},
				{ProductID: 11, Quantity: 1},
			},
		}
		mockRepo.On("Create", ctx, expected).Return(Order{
			ID:          5,
			CustomerID:  1,
			TotalAmount: decimal.RequireFromString("1019.98"),
		}, nil)

		o, err := svc.Create(ctx, 1, []uint{10, 11}, nil)
		require.NoError(t, err)
		assert.Equal(t, uint(5), o.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Empty product list rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, 1, nil, nil)
		assert.ErrorIs(t, err, ErrNoProducts)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Explicit order date passed through", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		when := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		mockRepo.On("Create", ctx, CreateOrderParams{
			CustomerID: 2,
			Lines:      []OrderLine{{ProductID: 7, Quantity: 1}},
			OrderDate:  &when,
		}).Return(Order{ID: 6, OrderDate: when}, nil)

		o, err := svc.Create(ctx, 2, []uint{7}, &when)
		require.NoError(t, err)
		assert.True(t, o.OrderDate.Equal(when))
	})

	t.Run("Unknown customer surfaces typed error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).
			Return(Order{}, &CustomerNotFoundError{ID: 99})

		_, err := svc.Create(ctx, 99, []uint{1}, nil)
		require.Error(t, err)
		assert.Equal(t, "Customer with ID 99 does not exist", err.Error())
	})

	t.Run("All invalid product ids reported together", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Create", ctx, mock.Anything).
			Return(Order{}, &InvalidProductsError{IDs: []string{"5", "9"}})

		_, err := svc.Create(ctx, 1, []uint{5, 9}, nil)
		require.Error(t, err)
		assert.Equal(t, "Invalid product IDs: 5, 9", err.Error())
	})
}
