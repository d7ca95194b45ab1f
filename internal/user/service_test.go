package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, email, password, role string) (User, error) {
	args := m.Called(ctx, email, password, role)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) FindByEmail(email string) (User, error) {
	args := m.Called(email)
	return args.Get(0).(User), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Tests ---

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("First account bootstraps as admin", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Count", ctx).Return(0, nil)
		mockRepo.On("Create", ctx, "boss@crm.local", mock.AnythingOfType("string"), "ADMIN").
			Return(User{ID: 1, Email: "boss@crm.local", Role: RoleAdmin}, nil)

		token, u, err := svc.Register(ctx, "boss@crm.local", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, RoleAdmin, u.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Later accounts are regular staff", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Count", ctx).Return(3, nil)
		mockRepo.On("Create", ctx, "staff@crm.local", mock.AnythingOfType("string"), "USER").
			Return(User{ID: 4, Email: "staff@crm.local", Role: RoleUser}, nil)

		token, u, err := svc.Register(ctx, "staff@crm.local", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, uint(4), u.ID)
		assert.Equal(t, RoleUser, u.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Count", ctx).Return(1, nil)
		mockRepo.On("Create", ctx, "dup@crm.local", mock.AnythingOfType("string"), "USER").
			Return(User{}, ErrEmailExists)

		_, _, err := svc.Register(ctx, "dup@crm.local", "secret123")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Count failure aborts registration", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("Count", ctx).Return(0, errors.New("db down"))

		_, _, err := svc.Register(ctx, "staff@crm.local", "secret123")
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestService_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		hash, err := HashPassword("secret123")
		require.NoError(t, err)

		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("FindByEmail", "staff@crm.local").
			Return(User{ID: 2, Email: "staff@crm.local", Password: hash, Role: RoleAdmin}, nil)

		token, u, err := svc.Login("staff@crm.local", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		hash, _ := HashPassword("secret123")

		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("FindByEmail", "staff@crm.local").
			Return(User{Password: hash}, nil)

		_, _, err := svc.Login("staff@crm.local", "wrong")
		assert.EqualError(t, err, "invalid email or password")
	})

	t.Run("Unknown email", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		mockRepo.On("FindByEmail", "nobody@crm.local").
			Return(User{}, errors.New("sql: no rows in result set"))

		_, _, err := svc.Login("nobody@crm.local", "secret123")
		assert.EqualError(t, err, "invalid email or password")
	})
}
