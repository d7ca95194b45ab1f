package graph

import (
	"context"

	"crm-be/internal/graph/model"
	"crm-be/internal/utils"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func AuthDirective(ctx context.Context, obj interface{}, next graphql.Resolver, role *model.Role) (res interface{}, err error) {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return nil, gqlerror.Errorf("unauthorized")
	}

	requiredRole := model.RoleUser
	if role != nil {
		requiredRole = *role
	}

	if requiredRole == model.RoleAdmin && utils.GetUserRoleFromContext(ctx) != string(model.RoleAdmin) {
		return nil, gqlerror.Errorf("forbidden: admin only")
	}

	return next(ctx)
}
