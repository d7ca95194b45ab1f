package customer

import (
	"context"
	"testing"
	"time"

	"crm-be/internal/graph/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customerRows(t time.Time, rows ...[3]string) *sqlmock.Rows {
	r := sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at", "updated_at"})
	for i, row := range rows {
		r.AddRow(i+1, row[0], row[1], row[2], t, t)
	}
	return r
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO customers").
			WithArgs("Alice", "alice@example.com", "+12345678901").
			WillReturnRows(customerRows(now, [3]string{"Alice", "alice@example.com", "+12345678901"}))
		mock.ExpectCommit()

		c, err := repo.Create(context.Background(), NewCustomer{
			Name: "Alice", Email: "alice@example.com", Phone: "+12345678901",
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(1), c.ID)
		assert.Equal(t, "alice@example.com", c.Email)
	})

	t.Run("Duplicate email from pre-check", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), NewCustomer{
			Name: "Alice", Email: "alice@example.com",
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Duplicate email from unique index", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO customers").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "customers_email_key"})
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), NewCustomer{
			Name: "Alice", Email: "alice@example.com",
		})
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestRepository_BulkCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Second row rolls back to its savepoint only", func(t *testing.T) {
		mock.ExpectBegin()

		// Row 0 succeeds.
		mock.ExpectExec("SAVEPOINT bulk_row_0").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectQuery("INSERT INTO customers").
			WithArgs("Alice", "alice@example.com", "").
			WillReturnRows(customerRows(now, [3]string{"Alice", "alice@example.com", ""}))
		mock.ExpectExec("RELEASE SAVEPOINT bulk_row_0").WillReturnResult(sqlmock.NewResult(0, 0))

		// Row 1 duplicates an email already inserted in this transaction.
		mock.ExpectExec("SAVEPOINT bulk_row_1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectExec("ROLLBACK TO SAVEPOINT bulk_row_1").WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectCommit()

		created, rowErrs, err := repo.BulkCreate(context.Background(), []BulkRow{
			{Index: 0, Data: NewCustomer{Name: "Alice", Email: "alice@example.com"}},
			{Index: 1, Data: NewCustomer{Name: "Alice Again", Email: "alice@example.com"}},
		})
		require.NoError(t, err)
		assert.Len(t, created, 1)
		require.Len(t, rowErrs, 1)
		assert.Equal(t, 1, rowErrs[0].Index)
		assert.ErrorIs(t, rowErrs[0].Err, ErrEmailExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, phone, created_at, updated_at").
			WithArgs(1).
			WillReturnRows(customerRows(time.Now(), [3]string{"Alice", "alice@example.com", ""}))

		c, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "Alice", c.Name)
	})

	t.Run("Missing id returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, phone, created_at, updated_at").
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at", "updated_at"}))

		c, err := repo.GetByID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Name filter and sort", func(t *testing.T) {
		nameContains := "ali"
		limit := int32(10)
		page := int32(1)

		mock.ExpectQuery("SELECT c.id, c.name, c.email, c.phone, c.created_at, c.updated_at FROM customers c WHERE 1=1 AND c.name ILIKE \\$1 ORDER BY c.name ASC LIMIT \\$2 OFFSET \\$3").
			WithArgs("%ali%", limit, int32(0)).
			WillReturnRows(customerRows(time.Now(), [3]string{"Alice", "alice@example.com", ""}))

		filter := &model.CustomerFilterInput{NameContains: &nameContains}
		sort := &model.CustomerSortInput{
			Field:     model.CustomerSortFieldName,
			Direction: model.SortDirectionAsc,
		}

		res, err := repo.List(context.Background(), filter, sort, &limit, &page)
		assert.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("Defaults without filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT c.id, c.name, c.email, c.phone, c.created_at, c.updated_at FROM customers c WHERE 1=1 ORDER BY c.created_at DESC LIMIT \\$1 OFFSET \\$2").
			WithArgs(int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at", "updated_at"}))

		res, err := repo.List(context.Background(), nil, nil, nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, res)
	})
}
