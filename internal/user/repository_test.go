package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}).
			AddRow(1, "staff@crm.local", "hashed", "USER", time.Now())

		mock.ExpectQuery("INSERT INTO users").
			WithArgs("staff@crm.local", "hashed", "USER").
			WillReturnRows(rows)

		u, err := repo.Create(context.Background(), "staff@crm.local", "hashed", "USER")
		assert.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
		assert.Equal(t, RoleUser, u.Role)
	})

	t.Run("Duplicate email maps unique violation", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs("dup@crm.local", "hashed", "USER").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

		_, err := repo.Create(context.Background(), "dup@crm.local", "hashed", "USER")
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("db error"))

		_, err := repo.Create(context.Background(), "staff@crm.local", "hashed", "USER")
		assert.Error(t, err)
	})
}

func TestRepository_FindByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "created_at"}).
			AddRow(2, "admin@crm.local", "hashed", "ADMIN", time.Now())

		mock.ExpectQuery("SELECT id, email, password, role, created_at FROM users").
			WithArgs("admin@crm.local").
			WillReturnRows(rows)

		u, err := repo.FindByEmail("admin@crm.local")
		assert.NoError(t, err)
		assert.Equal(t, RoleAdmin, u.Role)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, password, role, created_at FROM users").
			WithArgs("nobody@crm.local").
			WillReturnError(errors.New("sql: no rows in result set"))

		_, err := repo.FindByEmail("nobody@crm.local")
		assert.Error(t, err)
	})
}

func TestRepository_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Empty table", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		n, err := repo.Count(context.Background())
		assert.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Existing accounts", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		n, err := repo.Count(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 5, n)
	})
}
