package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"crm-be/internal/graph/model"
	"crm-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, input NewProduct) (Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter *model.ProductFilterInput, sort *model.ProductSortInput, limit, page *int32) ([]*Product, error)
	RestockLowStock(ctx context.Context, amount int) ([]Product, []string, error)
	Count(ctx context.Context) (int, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func (r *repository) Create(ctx context.Context, input NewProduct) (Product, error) {
	log := logger.FromCtx(ctx)

	var p Product
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, price, stock, created_at, updated_at
	`, input.Name, input.Description, input.Price, input.Stock).
		Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return Product{}, ErrNameExists
		}
		log.Error("db: failed to insert product",
			zap.String("name", input.Name),
			zap.Error(err),
		)
		return Product{}, err
	}

	return p, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, stock, created_at, updated_at
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *repository) List(
	ctx context.Context,
	filter *model.ProductFilterInput,
	sort *model.ProductSortInput,
	limit, page *int32,
) ([]*Product, error) {

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
		SELECT p.id, p.name, p.description, p.price, p.stock, p.created_at, p.updated_at
		FROM products p
		WHERE 1=1
	`

	args := []any{}
	argIndex := 1

	if filter != nil {
		if filter.NameContains != nil && *filter.NameContains != "" {
			query += fmt.Sprintf(" AND p.name ILIKE $%d", argIndex)
			args = append(args, "%"+*filter.NameContains+"%")
			argIndex++
		}

		if filter.PriceGte != nil {
			query += fmt.Sprintf(" AND p.price >= $%d", argIndex)
			args = append(args, *filter.PriceGte)
			argIndex++
		}

		if filter.PriceLte != nil {
			query += fmt.Sprintf(" AND p.price <= $%d", argIndex)
			args = append(args, *filter.PriceLte)
			argIndex++
		}

		if filter.StockGte != nil {
			query += fmt.Sprintf(" AND p.stock >= $%d", argIndex)
			args = append(args, *filter.StockGte)
			argIndex++
		}

		if filter.StockLte != nil {
			query += fmt.Sprintf(" AND p.stock <= $%d", argIndex)
			args = append(args, *filter.StockLte)
			argIndex++
		}

		if filter.LowStock != nil && *filter.LowStock {
			query += fmt.Sprintf(" AND p.stock < $%d", argIndex)
			args = append(args, LowStockThreshold)
			argIndex++
		}
	}

	orderBy := "p.name ASC"
	if sort != nil {
		dir := strings.ToUpper(string(sort.Direction))
		if dir != "ASC" && dir != "DESC" {
			dir = "ASC"
		}

		switch sort.Field {
		case model.ProductSortFieldName:
			orderBy = "p.name " + dir
		case model.ProductSortFieldPrice:
			orderBy = "p.price " + dir
		case model.ProductSortFieldStock:
			orderBy = "p.stock " + dir
		case model.ProductSortFieldCreatedAt:
			orderBy = "p.created_at " + dir
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

	var products []*Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}

	return products, rows.Err()
}

// RestockLowStock raises the stock of every product below the threshold by
// amount, in one transaction with the candidate rows locked. A product whose
// update fails is rolled back to its savepoint and reported; the rest proceed.
func (r *repository) RestockLowStock(ctx context.Context, amount int) ([]Product, []string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "RestockLowStock"),
		zap.Int("amount", amount),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `
		SELECT id, name, description, price, stock, created_at, updated_at
		FROM products
		WHERE stock < $1
		ORDER BY id
		FOR UPDATE
	`, LowStockThreshold)
	if err != nil {
		return nil, nil, err
	}

	var candidates []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.CreatedAt, &p.UpdatedAt); err != nil {
			rows.Close()
			return nil, nil, err
		}
		candidates = append(candidates, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, nil, err
	}
	rows.Close()

	var (
		updated []Product
		skipped []string
	)

	for _, p := range candidates {
		sp := fmt.Sprintf("restock_%d", p.ID)
		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+sp); err != nil {
			return nil, nil, err
		}

		err := tx.QueryRowContext(ctx, `
			UPDATE products
			SET stock = stock + $1, updated_at = NOW()
			WHERE id = $2
			RETURNING stock, updated_at
		`, amount, p.ID).Scan(&p.Stock, &p.UpdatedAt)

		if err != nil {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+sp); rbErr != nil {
				return nil, nil, rbErr
			}
			log.Warn("restock skipped product",
				zap.Uint("product_id", p.ID),
				zap.Error(err),
			)
			skipped = append(skipped, fmt.Sprintf("%s: %s", p.Name, err))
			continue
		}

		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+sp); err != nil {
			return nil, nil, err
		}
		updated = append(updated, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	log.Info("restock committed",
		zap.Int("updated", len(updated)),
		zap.Int("skipped", len(skipped)),
	)

	return updated, skipped, nil
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&n)
	return n, err
}
