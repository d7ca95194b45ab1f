package customer

import (
	"context"
	"errors"
	"testing"

	"crm-be/internal/graph/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, input NewCustomer) (Customer, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(Customer), args.Error(1)
}

func (m *MockRepository) BulkCreate(ctx context.Context, rows []BulkRow) ([]Customer, []RowError, error) {
	args := m.Called(ctx, rows)
	if args.Get(0) == nil {
		if args.Get(1) == nil {
			return nil, nil, args.Error(2)
		}
		return nil, args.Get(1).([]RowError), args.Error(2)
	}
	var rowErrs []RowError
	if args.Get(1) != nil {
		rowErrs = args.Get(1).([]RowError)
	}
	return args.Get(0).([]Customer), rowErrs, args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter *model.CustomerFilterInput, sort *model.CustomerSortInput, limit, page *int32) ([]*Customer, error) {
	args := m.Called(ctx, filter, sort, limit, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Customer), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Tests ---

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := NewCustomer{Name: "Alice", Email: "alice@example.com", Phone: "+12345678901"}
		mockRepo.On("Create", ctx, input).
			Return(Customer{ID: 1, Name: "Alice", Email: "alice@example.com", Phone: "+12345678901"}, nil)

		c, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, uint(1), c.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Invalid phone rejected before persistence", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, NewCustomer{Name: "Bob", Email: "bob@example.com", Phone: "12345"})
		assert.ErrorIs(t, err, ErrInvalidPhone)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Blank name rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, NewCustomer{Name: "   ", Email: "bob@example.com"})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("Invalid email rejected", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		_, err := svc.Create(ctx, NewCustomer{Name: "Bob", Email: "not-an-email"})
		assert.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("Duplicate email surfaces conflict", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		input := NewCustomer{Name: "Alice", Email: "alice@example.com"}
		mockRepo.On("Create", ctx, input).Return(Customer{}, ErrEmailExists)

		_, err := svc.Create(ctx, input)
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_BulkCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial success keeps row numbering", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		inputs := []NewCustomer{
			{Name: "Alice", Email: "alice@example.com"},
			{Name: "Bob", Email: "bob@example.com", Phone: "12345"}, // bad phone, filtered out
			{Name: "Carol", Email: "carol@example.com"},
		}

		// Only rows 0 and 2 reach the repository.
		expectedRows := []BulkRow{
			{Index: 0, Data: inputs[0]},
			{Index: 2, Data: inputs[2]},
		}

		mockRepo.On("BulkCreate", ctx, expectedRows).Return(
			[]Customer{{ID: 1, Email: "alice@example.com"}},
			[]RowError{{Index: 2, Err: ErrEmailExists}},
			nil,
		)

		created, errStrings, err := svc.BulkCreate(ctx, inputs)
		require.NoError(t, err)
		assert.Len(t, created, 1)
		require.Len(t, errStrings, 2)
		assert.Equal(t, "Row 2: "+ErrInvalidPhone.Error(), errStrings[0])
		assert.Equal(t, "Row 3: "+ErrEmailExists.Error(), errStrings[1])
		mockRepo.AssertExpectations(t)
	})

	t.Run("Transaction failure aborts the batch", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		inputs := []NewCustomer{{Name: "Alice", Email: "alice@example.com"}}
		mockRepo.On("BulkCreate", ctx, mock.Anything).Return(nil, nil, errors.New("db down"))

		_, _, err := svc.BulkCreate(ctx, inputs)
		assert.Error(t, err)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing customer returns nil without error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("GetByID", ctx, uint(99)).Return(nil, nil)

		c, err := svc.GetByID(ctx, 99)
		assert.NoError(t, err)
		assert.Nil(t, c)
	})
}
