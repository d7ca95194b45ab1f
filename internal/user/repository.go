package user

import (
	"context"
	"database/sql"
	"errors"

	"crm-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, email, password, role string) (User, error)
	FindByEmail(email string) (User, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, email, password, role string) (User, error) {
	log := logger.FromCtx(ctx)

	var u User
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (email, password, role) VALUES ($1, $2, $3) RETURNING id, email, password, role, created_at",
		email, password, role,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return User{}, ErrEmailExists
		}
		log.Error("db: failed to insert staff account",
			zap.String("email", email),
			zap.Error(err),
		)
	}

	return u, err
}

func (r *repository) FindByEmail(email string) (User, error) {
	var u User
	err := r.db.QueryRow(
		"SELECT id, email, password, role, created_at FROM users WHERE email = $1",
		email,
	).Scan(&u.ID, &u.Email, &u.Password, &u.Role, &u.CreatedAt)

	return u, err
}

// Count reports how many staff accounts exist. Registration uses it to
// promote the very first account to ADMIN.
func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n)
	return n, err
}
