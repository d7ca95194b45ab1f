package user

import (
	"context"
	"errors"

	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, email, password string) (string, User, error)
	Login(email, password string) (string, User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Register creates a staff account and issues a JWT for it. On a fresh
// install the first account registered becomes ADMIN, so the admin-only
// mutations (restocking) are reachable without seeding the users table by
// hand; every later account starts as USER.
func (s *service) Register(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	role := RoleUser
	existing, err := s.repo.Count(ctx)
	if err != nil {
		log.Error("failed to count staff accounts", zap.Error(err))
		return "", User{}, err
	}
	if existing == 0 {
		role = RoleAdmin
		log.Info("no staff accounts yet, promoting first registration to admin",
			zap.String("email", email),
		)
	}

	u, err := s.repo.Create(ctx, email, hashed, string(role))
	if err != nil {
		log.Warn("staff registration rejected", zap.String("email", email), zap.Error(err))
		return "", User{}, err
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	if err != nil {
		log.Error("failed to generate jwt", zap.Uint("staff_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("staff account created",
		zap.Uint("staff_id", u.ID),
		zap.String("email", email),
		zap.String("role", string(u.Role)),
	)

	return token, u, nil
}

// Login authenticates a staff account. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *service) Login(email, password string) (string, User, error) {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return "", User{}, errors.New("invalid email or password")
	}

	if !CheckPasswordHash(password, u.Password) {
		return "", User{}, errors.New("invalid email or password")
	}

	token, err := GenerateJWT(u.ID, string(u.Role), email)
	return token, u, err
}
