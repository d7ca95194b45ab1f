package product

import (
	"context"
	"testing"
	"time"

	"crm-be/internal/graph/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{"id", "name", "description", "price", "stock", "created_at", "updated_at"}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()
	price := decimal.RequireFromString("999.99")

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO products").
			WithArgs("Laptop", "A laptop", price, 5).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(1, "Laptop", "A laptop", "999.99", 5, now, now))

		p, err := repo.Create(context.Background(), NewProduct{
			Name: "Laptop", Description: "A laptop", Price: price, Stock: 5,
		})
		assert.NoError(t, err)
		assert.Equal(t, uint(1), p.ID)
		assert.True(t, p.Price.Equal(price))
	})

	t.Run("Duplicate name maps to conflict", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO products").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "products_name_key"})

		_, err := repo.Create(context.Background(), NewProduct{
			Name: "Laptop", Price: price,
		})
		assert.ErrorIs(t, err, ErrNameExists)
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, name, description, price, stock").
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(1, "Laptop", "", "999.99", 5, now, now))

		p, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, "Laptop", p.Name)
	})

	t.Run("Missing id returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, description, price, stock").
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		p, err := repo.GetByID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Nil(t, p)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Low stock filter with price sort", func(t *testing.T) {
		lowStock := true
		limit := int32(10)
		page := int32(1)
		now := time.Now()

		mock.ExpectQuery("SELECT p.id, p.name, p.description, p.price, p.stock, p.created_at, p.updated_at FROM products p WHERE 1=1 AND p.stock < \\$1 ORDER BY p.price DESC LIMIT \\$2 OFFSET \\$3").
			WithArgs(LowStockThreshold, limit, int32(0)).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(1, "Laptop", "", "999.99", 3, now, now).
				AddRow(2, "Mouse", "", "19.99", 7, now, now))

		filter := &model.ProductFilterInput{LowStock: &lowStock}
		sort := &model.ProductSortInput{
			Field:     model.ProductSortFieldPrice,
			Direction: model.SortDirectionDesc,
		}

		res, err := repo.List(context.Background(), filter, sort, &limit, &page)
		assert.NoError(t, err)
		require.Len(t, res, 2)
		assert.True(t, res[0].LowStock())
	})

	t.Run("Defaults sort by name ascending", func(t *testing.T) {
		mock.ExpectQuery("SELECT p.id, p.name, p.description, p.price, p.stock, p.created_at, p.updated_at FROM products p WHERE 1=1 ORDER BY p.name ASC LIMIT \\$1 OFFSET \\$2").
			WithArgs(int32(20), int32(0)).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		res, err := repo.List(context.Background(), nil, nil, nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestRepository_RestockLowStock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Updates every candidate under its own savepoint", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, description, price, stock, created_at, updated_at FROM products WHERE stock < \\$1 ORDER BY id FOR UPDATE").
			WithArgs(LowStockThreshold).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(1, "A", "", "5.00", 3, now, now).
				AddRow(3, "C", "", "7.00", 7, now, now))

		mock.ExpectExec("SAVEPOINT restock_1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("UPDATE products").
			WithArgs(5, uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"stock", "updated_at"}).AddRow(8, now))
		mock.ExpectExec("RELEASE SAVEPOINT restock_1").WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectExec("SAVEPOINT restock_3").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("UPDATE products").
			WithArgs(5, uint(3)).
			WillReturnRows(sqlmock.NewRows([]string{"stock", "updated_at"}).AddRow(12, now))
		mock.ExpectExec("RELEASE SAVEPOINT restock_3").WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectCommit()

		updated, skipped, err := repo.RestockLowStock(context.Background(), 5)
		require.NoError(t, err)
		require.Len(t, updated, 2)
		assert.Equal(t, 8, updated[0].Stock)
		assert.Equal(t, 12, updated[1].Stock)
		assert.Empty(t, skipped)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failed row is skipped, the rest commit", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, description, price, stock, created_at, updated_at FROM products WHERE stock < \\$1 ORDER BY id FOR UPDATE").
			WithArgs(LowStockThreshold).
			WillReturnRows(sqlmock.NewRows(productColumns()).
				AddRow(1, "A", "", "5.00", 3, now, now).
				AddRow(2, "B", "", "6.00", 4, now, now))

		mock.ExpectExec("SAVEPOINT restock_1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("UPDATE products").
			WithArgs(10, uint(1)).
			WillReturnError(&pq.Error{Code: "23514", Constraint: "products_stock_check"})
		mock.ExpectExec("ROLLBACK TO SAVEPOINT restock_1").WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectExec("SAVEPOINT restock_2").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("UPDATE products").
			WithArgs(10, uint(2)).
			WillReturnRows(sqlmock.NewRows([]string{"stock", "updated_at"}).AddRow(14, now))
		mock.ExpectExec("RELEASE SAVEPOINT restock_2").WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectCommit()

		updated, skipped, err := repo.RestockLowStock(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, updated, 1)
		assert.Equal(t, uint(2), updated[0].ID)
		require.Len(t, skipped, 1)
		assert.Contains(t, skipped[0], "A: ")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No candidates commits an empty result", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, description, price, stock, created_at, updated_at FROM products WHERE stock < \\$1 ORDER BY id FOR UPDATE").
			WithArgs(LowStockThreshold).
			WillReturnRows(sqlmock.NewRows(productColumns()))
		mock.ExpectCommit()

		updated, skipped, err := repo.RestockLowStock(context.Background(), 10)
		assert.NoError(t, err)
		assert.Empty(t, updated)
		assert.Empty(t, skipped)
	})
}
