package graph

import (
	"context"
	"fmt"

	"crm-be/internal/graph/model"
	"crm-be/internal/logger"
	"crm-be/internal/user"

	"go.uber.org/zap"
)

func mapAuthResponse(token string, u user.User) *model.AuthResponse {
	return &model.AuthResponse{
		Token: token,
		User: &model.User{
			ID:    fmt.Sprint(u.ID),
			Email: u.Email,
			Role:  model.Role(u.Role),
		},
	}
}

// Register is the resolver for the register field. Staff auth is not part
// of the customer-facing envelope contract, so failures surface as GraphQL
// errors.
func (r *mutationResolver) Register(ctx context.Context, input model.RegisterInput) (*model.AuthResponse, error) {
	log := logger.FromCtx(ctx)

	token, u, err := r.UserSvc.Register(ctx, input.Email, input.Password)
	if err != nil {
		log.Warn("staff registration failed", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}

	log.Info("staff account registered",
		zap.Uint("staff_id", u.ID),
		zap.String("role", string(u.Role)),
	)

	return mapAuthResponse(token, u), nil
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, input model.LoginInput) (*model.AuthResponse, error) {
	log := logger.FromCtx(ctx)

	token, u, err := r.UserSvc.Login(input.Email, input.Password)
	if err != nil {
		log.Warn("staff login failed", zap.String("email", input.Email))
		return nil, err
	}

	log.Info("staff logged in", zap.Uint("staff_id", u.ID))

	return mapAuthResponse(token, u), nil
}
