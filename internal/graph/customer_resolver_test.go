package graph

import (
	"context"
	"errors"
	"testing"

	"crm-be/internal/customer"
	"crm-be/internal/graph/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Create(ctx context.Context, input customer.NewCustomer) (*customer.Customer, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerService) BulkCreate(ctx context.Context, inputs []customer.NewCustomer) ([]customer.Customer, []string, error) {
	args := m.Called(ctx, inputs)
	var created []customer.Customer
	if args.Get(0) != nil {
		created = args.Get(0).([]customer.Customer)
	}
	var errStrings []string
	if args.Get(1) != nil {
		errStrings = args.Get(1).([]string)
	}
	return created, errStrings, args.Error(2)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerService) List(ctx context.Context, filter *model.CustomerFilterInput, sort *model.CustomerSortInput, limit, page *int32) ([]*customer.Customer, error) {
	args := m.Called(ctx, filter, sort, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Tests ---

func TestMutationResolver_CreateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockCustomerService)
		resolver := &Resolver{CustomerSvc: mockSvc}
		mr := &mutationResolver{resolver}

		input := model.CustomerInput{Name: "Alice", Email: "alice@example.com"}
		mockSvc.On("Create", ctx, MapCustomerInput(input)).
			Return(&customer.Customer{ID: 1, Name: "Alice", Email: "alice@example.com"}, nil)

		res, err := mr.CreateCustomer(ctx, input)

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Customer created successfully", *res.Message)
		require.NotNil(t, res.Customer)
		assert.Equal(t, "1", res.Customer.ID)
		assert.Empty(t, res.Errors)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Validation failure stays inside the envelope", func(t *testing.T) {
		mockSvc := new(MockCustomerService)
		resolver := &Resolver{CustomerSvc: mockSvc}
		mr := &mutationResolver{resolver}

		input := model.CustomerInput{Name: "Alice", Email: "alice@example.com"}
		mockSvc.On("Create", ctx, mock.Anything).Return(nil, customer.ErrEmailExists)

		res, err := mr.CreateCustomer(ctx, input)

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Validation failed", *res.Message)
		assert.Nil(t, res.Customer)
		assert.Equal(t, []string{"Email already exists"}, res.Errors)
	})
}

func TestMutationResolver_BulkCreateCustomers(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial success reports both halves", func(t *testing.T) {
		mockSvc := new(MockCustomerService)
		resolver := &Resolver{CustomerSvc: mockSvc}
		mr := &mutationResolver{resolver}

		input := []*model.CustomerInput{
			{Name: "Alice", Email: "alice@example.com"},
			{Name: "Bob", Email: "alice@example.com"},
		}

		mockSvc.On("BulkCreate", ctx, mock.Anything).Return(
			[]customer.Customer{{ID: 1, Name: "Alice", Email: "alice@example.com"}},
			[]string{"Row 2: Email already exists"},
			nil,
		)

		res, err := mr.BulkCreateCustomers(ctx, input)

		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Created 1 of 2 customers", *res.Message)
		require.Len(t, res.Customers, 1)
		assert.Equal(t, []string{"Row 2: Email already exists"}, res.Errors)
	})

	t.Run("Transaction failure fails the whole batch", func(t *testing.T) {
		mockSvc := new(MockCustomerService)
		resolver := &Resolver{CustomerSvc: mockSvc}
		mr := &mutationResolver{resolver}

		mockSvc.On("BulkCreate", ctx, mock.Anything).
			Return(nil, nil, errors.New("db down"))

		res, err := mr.BulkCreateCustomers(ctx, []*model.CustomerInput{
			{Name: "Alice", Email: "alice@example.com"},
		})

		require.NoError(t, err)
		assert.False(t, res.Success)
		assert.Empty(t, res.Customers)
		assert.Equal(t, []string{"db down"}, res.Errors)
	})
}

func TestQueryResolver_Customer(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockSvc := new(MockCustomerService)
		resolver := &Resolver{CustomerSvc: mockSvc}
		qr := &queryResolver{resolver}

		mockSvc.On("GetByID", ctx, uint(1)).
			Return(&customer.Customer{ID: 1, Name: "Alice", Phone: "+12345678901"}, nil)

		res, err := qr.Customer(ctx, "1")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "Alice", res.Name)
		require.NotNil(t, res.Phone)
		assert.Equal(t, "+12345678901", *res.Phone)
	})

	t.Run("Missing id yields null without error", func(t *testing.T) {
		mockSvc := new(MockCustomerService)
		resolver := &Resolver{CustomerSvc: mockSvc}
		qr := &queryResolver{resolver}

		mockSvc.On("GetByID", ctx, uint(42)).Return(nil, nil)

		res, err := qr.Customer(ctx, "42")
		assert.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("Non-numeric id yields null", func(t *testing.T) {
		mockSvc := new(MockCustomerService)
		resolver := &Resolver{CustomerSvc: mockSvc}
		qr := &queryResolver{resolver}

		res, err := qr.Customer(ctx, "abc")
		assert.NoError(t, err)
		assert.Nil(t, res)
		mockSvc.AssertNotCalled(t, "GetByID")
	})
}

func TestQueryResolver_Customers(t *testing.T) {
	ctx := context.Background()

	mockSvc := new(MockCustomerService)
	resolver := &Resolver{CustomerSvc: mockSvc}
	qr := &queryResolver{resolver}

	nameContains := "ali"
	filter := &model.CustomerFilterInput{NameContains: &nameContains}

	mockSvc.On("List", ctx, filter, (*model.CustomerSortInput)(nil), (*int32)(nil), (*int32)(nil)).
		Return([]*customer.Customer{{ID: 1, Name: "Alice"}}, nil)

	res, err := qr.Customers(ctx, filter, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Alice", res[0].Name)
}
