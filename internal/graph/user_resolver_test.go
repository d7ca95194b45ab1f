package graph

import (
	"context"
	"testing"

	"crm-be/internal/graph/model"
	"crm-be/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *MockUserService) Login(email, password string) (string, user.User, error) {
	args := m.Called(email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

// --- Tests ---

func TestMutationResolver_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockUserService)
		resolver := &Resolver{UserSvc: mockSvc}
		mr := &mutationResolver{resolver}

		mockSvc.On("Register", ctx, "staff@example.com", "secret123").
			Return("token-abc", user.User{ID: 1, Email: "staff@example.com", Role: user.RoleUser}, nil)

		res, err := mr.Register(ctx, model.RegisterInput{
			Email:    "staff@example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.Equal(t, "token-abc", res.Token)
		assert.Equal(t, model.RoleUser, res.User.Role)
	})

	t.Run("Duplicate email propagates", func(t *testing.T) {
		mockSvc := new(MockUserService)
		resolver := &Resolver{UserSvc: mockSvc}
		mr := &mutationResolver{resolver}

		mockSvc.On("Register", ctx, "staff@example.com", "secret123").
			Return("", user.User{}, user.ErrEmailExists)

		_, err := mr.Register(ctx, model.RegisterInput{
			Email:    "staff@example.com",
			Password: "secret123",
		})
		assert.ErrorIs(t, err, user.ErrEmailExists)
	})
}

func TestMutationResolver_Login(t *testing.T) {
	mockSvc := new(MockUserService)
	resolver := &Resolver{UserSvc: mockSvc}
	mr := &mutationResolver{resolver}

	mockSvc.On("Login", "staff@example.com", "secret123").
		Return("token-abc", user.User{ID: 1, Email: "staff@example.com", Role: user.RoleAdmin}, nil)

	res, err := mr.Login(context.Background(), model.LoginInput{
		Email:    "staff@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, res.User.Role)
}

func TestQueryResolver_Hello(t *testing.T) {
	qr := &queryResolver{&Resolver{}}

	greeting, err := qr.Hello(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hello, GraphQL!", greeting)
}
