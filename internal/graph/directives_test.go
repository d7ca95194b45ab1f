package graph

import (
	"context"
	"testing"

	"crm-be/internal/graph/model"
	"crm-be/internal/utils"

	"github.com/99designs/gqlgen/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(called *bool) graphql.Resolver {
	return func(ctx context.Context) (interface{}, error) {
		*called = true
		return "ok", nil
	}
}

func TestAuthDirective(t *testing.T) {
	adminRole := model.RoleAdmin

	t.Run("Anonymous request rejected", func(t *testing.T) {
		called := false
		_, err := AuthDirective(context.Background(), nil, passthrough(&called), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unauthorized")
		assert.False(t, called)
	})

	t.Run("Non-admin rejected from admin field", func(t *testing.T) {
		ctx := utils.WithUser(context.Background(), 1, "staff@example.com", "USER")

		called := false
		_, err := AuthDirective(ctx, nil, passthrough(&called), &adminRole)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "forbidden")
		assert.False(t, called)
	})

	t.Run("Admin passes through", func(t *testing.T) {
		ctx := utils.WithUser(context.Background(), 1, "admin@example.com", "ADMIN")

		called := false
		res, err := AuthDirective(ctx, nil, passthrough(&called), &adminRole)

		require.NoError(t, err)
		assert.Equal(t, "ok", res)
		assert.True(t, called)
	})

	t.Run("Any authenticated user passes without role", func(t *testing.T) {
		ctx := utils.WithUser(context.Background(), 2, "staff@example.com", "USER")

		called := false
		_, err := AuthDirective(ctx, nil, passthrough(&called), nil)

		require.NoError(t, err)
		assert.True(t, called)
	})
}
