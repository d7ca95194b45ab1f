package order

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderColumns() []string {
	return []string{"id", "customer_id", "total_amount", "order_date", "created_at", "updated_at"}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Order and items persist together", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT id, name, price").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
				AddRow(10, "Laptop", "999.99").
				AddRow(11, "Mouse", "19.99"))
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows(orderColumns()).
				AddRow(5, 1, "1039.97", now, now, now))
		mock.ExpectQuery("INSERT INTO order_items").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery("INSERT INTO order_items").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectCommit()

		o, err := repo.Create(context.Background(), CreateOrderParams{
			CustomerID: 1,
			Lines: []OrderLine{
				{ProductID: 10, Quantity: 1},
				{ProductID: 11, Quantity: 2},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(5), o.ID)
		require.Len(t, o.Items, 2)
		assert.Equal(t, "Laptop", o.Items[0].ProductName)
		assert.Equal(t, 2, o.Items[1].Quantity)
		assert.True(t, o.TotalAmount.Equal(decimal.RequireFromString("1039.97")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown customer rolls back before any write", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(uint(99)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), CreateOrderParams{
			CustomerID: 99,
			Lines:      []OrderLine{{ProductID: 10, Quantity: 1}},
		})
		require.Error(t, err)
		assert.Equal(t, "Customer with ID 99 does not exist", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Every unknown product id is reported, nothing persists", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		// Only product 10 exists out of 10, 98, 99.
		mock.ExpectQuery("SELECT id, name, price").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
				AddRow(10, "Laptop", "999.99"))
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), CreateOrderParams{
			CustomerID: 1,
			Lines: []OrderLine{
				{ProductID: 10, Quantity: 1},
				{ProductID: 98, Quantity: 1},
				{ProductID: 99, Quantity: 1},
			},
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid product IDs: 98, 99", err.Error())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Item insert failure aborts the whole order", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(uint(1)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT id, name, price").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
				AddRow(10, "Laptop", "999.99"))
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows(orderColumns()).
				AddRow(5, 1, "999.99", now, now, now))
		mock.ExpectQuery("INSERT INTO order_items").
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err := repo.Create(context.Background(), CreateOrderParams{
			CustomerID: 1,
			Lines:      []OrderLine{{ProductID: 10, Quantity: 1}},
		})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	now := time.Now()

	t.Run("Found with items", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, customer_id, total_amount").
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows(orderColumns()).
				AddRow(5, 1, "1019.98", now, now, now))
		mock.ExpectQuery("SELECT oi.id, oi.order_id, oi.product_id").
			WithArgs(uint(5)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "product_id", "name", "quantity", "unit_price"}).
				AddRow(1, 5, 10, "Laptop", 1, "999.99").
				AddRow(2, 5, 11, "Mouse", 1, "19.99"))

		o, err := repo.GetByID(context.Background(), 5)
		assert.NoError(t, err)
		require.NotNil(t, o)
		require.Len(t, o.Items, 2)
		assert.Equal(t, "Mouse", o.Items[1].ProductName)
	})

	t.Run("Missing id returns nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, customer_id, total_amount").
			WithArgs(42).
			WillReturnRows(sqlmock.NewRows(orderColumns()))

		o, err := repo.GetByID(context.Background(), 42)
		assert.NoError(t, err)
		assert.Nil(t, o)
	})
}

func TestRepository_TotalRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("1234.50"))

	total, err := repo.TotalRevenue(context.Background())
	assert.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("1234.50")))
}
