package graph

import (
	"context"
	"testing"

	"crm-be/internal/graph/model"
	"crm-be/internal/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Create(ctx context.Context, input product.NewProduct) (product.Product, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(product.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, filter *model.ProductFilterInput, sort *model.ProductSortInput, limit, page *int32) ([]*product.Product, error) {
	args := m.Called(ctx, filter, sort, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductService) RestockLowStock(ctx context.Context, amount int) ([]product.Product, []string, error) {
	args := m.Called(ctx, amount)
	var updated []product.Product
	if args.Get(0) != nil {
		updated = args.Get(0).([]product.Product)
	}
	var skipped []string
	if args.Get(1) != nil {
		skipped = args.Get(1).([]string)
	}
	return updated, skipped, args.Error(2)
}

func (m *MockProductService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Tests ---

func TestMutationResolver_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockProductService)
		resolver := &Resolver{ProductSvc: mockSvc}
		mr := &mutationResolver{resolver}

		input := model.ProductInput{Name: "Laptop", Price: 999.99}
		mockSvc.On("Create", ctx, MapProductInput(input)).Return(product.Product{
			ID:    1,
			Name:  "Laptop",
			Price: decimal.RequireFromString("999.99"),
			Stock: 4,
		}, nil)

		res, err := mr.CreateProduct(ctx, input)

		require.NoError(t, err)
		assert.True(t, res.Success)
		require.NotNil(t, res.Product)
		assert.Equal(t, "1", res.Product.ID)
		assert.InDelta(t, 999.99, res.Product.Price, 0.001)
		assert.True(t, res.Product.LowStock)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Invalid price stays inside the envelope", func(t *testing.T) {
		mockSvc := new(MockProductService)
		resolver := &Resolver{ProductSvc: mockSvc}
		mr := &mutationResolver{resolver}

		input := model.ProductInput{Name: "Laptop", Price: 0}
		mockSvc.On("Create", ctx, mock.Anything).Return(product.Product{}, product.ErrInvalidPrice)

		res, err := mr.CreateProduct(ctx, input)

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"Price must be greater than 0"}, res.Errors)
		assert.Nil(t, res.Product)
	})
}

func TestMutationResolver_UpdateLowStockProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Updates reported with count message", func(t *testing.T) {
		mockSvc := new(MockProductService)
		resolver := &Resolver{ProductSvc: mockSvc}
		mr := &mutationResolver{resolver}

		mockSvc.On("RestockLowStock", ctx, 10).Return([]product.Product{
			{ID: 1, Name: "A", Stock: 13},
			{ID: 2, Name: "B", Stock: 17},
		}, nil, nil)

		res, err := mr.UpdateLowStockProducts(ctx, 10)

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Successfully updated 2 low-stock products", *res.Message)
		require.Len(t, res.Products, 2)
		assert.Equal(t, int32(13), res.Products[0].Stock)
		assert.Empty(t, res.Errors)
	})

	t.Run("Nothing below threshold", func(t *testing.T) {
		mockSvc := new(MockProductService)
		resolver := &Resolver{ProductSvc: mockSvc}
		mr := &mutationResolver{resolver}

		mockSvc.On("RestockLowStock", ctx, 10).Return(nil, nil, nil)

		res, err := mr.UpdateLowStockProducts(ctx, 10)

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "No low-stock products found", *res.Message)
		assert.Empty(t, res.Products)
	})

	t.Run("Invalid amount stays inside the envelope", func(t *testing.T) {
		mockSvc := new(MockProductService)
		resolver := &Resolver{ProductSvc: mockSvc}
		mr := &mutationResolver{resolver}

		mockSvc.On("RestockLowStock", ctx, 0).
			Return(nil, nil, product.ErrInvalidRestockAmount)

		res, err := mr.UpdateLowStockProducts(ctx, 0)

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, []string{"Restock amount must be greater than 0"}, res.Errors)
	})
}

func TestQueryResolver_Products(t *testing.T) {
	ctx := context.Background()

	mockSvc := new(MockProductService)
	resolver := &Resolver{ProductSvc: mockSvc}
	qr := &queryResolver{resolver}

	lowStock := true
	filter := &model.ProductFilterInput{LowStock: &lowStock}

	mockSvc.On("List", ctx, filter, (*model.ProductSortInput)(nil), (*int32)(nil), (*int32)(nil)).
		Return([]*product.Product{
			{ID: 1, Name: "Mouse", Price: decimal.RequireFromString("19.99"), Stock: 3},
		}, nil)

	res, err := qr.Products(ctx, filter, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].LowStock)
}
