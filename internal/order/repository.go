package order

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"crm-be/internal/graph/model"
	"crm-be/internal/logger"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateOrderParams) (Order, error)
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, filter *model.OrderFilterInput, sort *model.OrderSortInput, limit, page *int32) ([]*Order, error)
	Count(ctx context.Context) (int, error)
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create writes the order and its items in one transaction. The customer and
// every referenced product are verified first; nothing persists when any check
// fails. Unit prices are snapshotted from the product rows at creation time.
func (r *repository) Create(ctx context.Context, params CreateOrderParams) (Order, error) {
	log := logger.FromCtx(ctx).With(zap.Uint("customer_id", params.CustomerID))

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Order{}, err
	}
	defer tx.Rollback()

	var customerExists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)",
		params.CustomerID,
	).Scan(&customerExists)
	if err != nil {
		return Order{}, err
	}
	if !customerExists {
		return Order{}, &CustomerNotFoundError{ID: params.CustomerID}
	}

	ids := make([]int64, len(params.Lines))
	for i, line := range params.Lines {
		ids[i] = int64(line.ProductID)
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, price
		FROM products
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return Order{}, err
	}

	type productInfo struct {
		name  string
		price decimal.Decimal
	}
	found := map[uint]productInfo{}
	for rows.Next() {
		var (
			id   uint
			info productInfo
		)
		if err := rows.Scan(&id, &info.name, &info.price); err != nil {
			rows.Close()
			return Order{}, err
		}
		found[id] = info
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return Order{}, err
	}
	rows.Close()

	// Collect every unknown id, in request order, so the caller sees them all
	// at once.
	var invalid []string
	for _, line := range params.Lines {
		if _, ok := found[line.ProductID]; !ok {
			invalid = append(invalid, strconv.FormatUint(uint64(line.ProductID), 10))
		}
	}
	if len(invalid) > 0 {
		return Order{}, &InvalidProductsError{IDs: invalid}
	}

	total := decimal.Zero
	for _, line := range params.Lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		total = total.Add(found[line.ProductID].price.Mul(qty))
	}

	var o Order
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, total_amount, order_date)
		VALUES ($1, $2, COALESCE($3, NOW()))
		RETURNING id, customer_id, total_amount, order_date, created_at, updated_at
	`, params.CustomerID, total, params.OrderDate).
		Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		log.Error("db: failed to insert order", zap.Error(err))
		return Order{}, err
	}

	for _, line := range params.Lines {
		info := found[line.ProductID]
		item := OrderItem{
			OrderID:     o.ID,
			ProductID:   line.ProductID,
			ProductName: info.name,
			Quantity:    line.Quantity,
			UnitPrice:   info.price,
		}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.ProductID, item.Quantity, item.UnitPrice).Scan(&item.ID)
		if err != nil {
			log.Error("db: failed to insert order item",
				zap.Uint("product_id", line.ProductID),
				zap.Error(err),
			)
			return Order{}, err
		}
		o.Items = append(o.Items, item)
	}

	if err := tx.Commit(); err != nil {
		return Order{}, err
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.String("total_amount", o.TotalAmount.String()),
		zap.Int("items", len(o.Items)),
	)

	return o, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_id, total_amount, order_date, created_at, updated_at
		FROM orders
		WHERE id = $1
	`, id).Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *repository) itemsForOrder(ctx context.Context, orderID uint) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.unit_price
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

func (r *repository) List(
	ctx context.Context,
	filter *model.OrderFilterInput,
	sort *model.OrderSortInput,
	limit, page *int32,
) ([]*Order, error) {

	finalLimit := int32(20)
	finalPage := int32(1)

	if limit != nil && *limit > 0 {
		finalLimit = *limit
	}
	if page != nil && *page > 0 {
		finalPage = *page
	}
	if finalLimit > 100 {
		finalLimit = 100
	}

	offset := (finalPage - 1) * finalLimit

	query := `
		SELECT o.id, o.customer_id, o.total_amount, o.order_date, o.created_at, o.updated_at
		FROM orders o
		WHERE 1=1
	`

	args := []any{}
	argIndex := 1

	if filter != nil {
		if filter.TotalAmountGte != nil {
			query += fmt.Sprintf(" AND o.total_amount >= $%d", argIndex)
			args = append(args, *filter.TotalAmountGte)
			argIndex++
		}

		if filter.TotalAmountLte != nil {
			query += fmt.Sprintf(" AND o.total_amount <= $%d", argIndex)
			args = append(args, *filter.TotalAmountLte)
			argIndex++
		}

		if filter.OrderDateGte != nil {
			query += fmt.Sprintf(" AND o.order_date >= $%d", argIndex)
			args = append(args, *filter.OrderDateGte)
			argIndex++
		}

		if filter.OrderDateLte != nil {
			query += fmt.Sprintf(" AND o.order_date <= $%d", argIndex)
			args = append(args, *filter.OrderDateLte)
			argIndex++
		}

		if filter.CustomerNameContains != nil && *filter.CustomerNameContains != "" {
			query += fmt.Sprintf(
				" AND EXISTS (SELECT 1 FROM customers c WHERE c.id = o.customer_id AND c.name ILIKE $%d)",
				argIndex,
			)
			args = append(args, "%"+*filter.CustomerNameContains+"%")
			argIndex++
		}

		if filter.ProductNameContains != nil && *filter.ProductNameContains != "" {
			query += fmt.Sprintf(
				" AND EXISTS (SELECT 1 FROM order_items oi JOIN products p ON p.id = oi.product_id WHERE oi.order_id = o.id AND p.name ILIKE $%d)",
				argIndex,
			)
			args = append(args, "%"+*filter.ProductNameContains+"%")
			argIndex++
		}

		if filter.ProductID != nil {
			query += fmt.Sprintf(
				" AND EXISTS (SELECT 1 FROM order_items oi WHERE oi.order_id = o.id AND oi.product_id = $%d)",
				argIndex,
			)
			args = append(args, *filter.ProductID)
			argIndex++
		}
	}

	orderBy := "o.order_date DESC"
	if sort != nil {
		dir := strings.ToUpper(string(sort.Direction))
		if dir != "ASC" && dir != "DESC" {
			dir = "ASC"
		}

		switch sort.Field {
		case model.OrderSortFieldTotalAmount:
			orderBy = "o.total_amount " + dir
		case model.OrderSortFieldOrderDate:
			orderBy = "o.order_date " + dir
		}
	}

	query += " ORDER BY " + orderBy
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, finalLimit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.OrderDate, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		items, err := r.itemsForOrder(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}

	return orders, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&n)
	return n, err
}

func (r *repository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(total_amount), 0) FROM orders",
	).Scan(&total)
	return total, err
}
