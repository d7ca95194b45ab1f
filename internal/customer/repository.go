package customer

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
	Create(ctx context.Context, input NewCustomer) (Customer, error)
	BulkCreate(ctx context.Context, rows []BulkRow) ([]Customer, []RowError, error)
	GetByID(ctx context.Context, id uint) (*Customer, error)
	List(ctx context.Context, filter *model.CustomerFilterInput, sort *model.CustomerSortInput, limit, page *int32) ([]*Customer, error)
	Count(ctx context.Context) (int, error)
}

// BulkRow carries the position of a row in the original request so row errors
// stay addressable after invalid rows were filtered out by the service.
type BulkRow struct {
	Index int
	Data  NewCustomer
}

type RowError struct {
	Index int
	Err   error
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

// Create inserts a single customer. The email pre-check runs in the same
// transaction as the insert; the unique index remains the authority under
// concurrent creates.
func (r *repository) Create(ctx context.Context, input NewCustomer) (Customer, error) {
	log := logger.FromCtx(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Customer{}, err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)",
		input.Email,
	).Scan(&exists)
	if err != nil {
		return Customer{}, err
	}
	if exists {
		return Customer{}, ErrEmailExists
	}

	var c Customer
	err = tx.QueryRowContext(ctx, `
		INSERT INTO customers (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, phone, created_at, updated_at
	`, input.Name, input.Email, input.Phone).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Customer{}, ErrEmailExists
		}
		log.Error("db: failed to insert customer",
			zap.String("email", input.Email),
			zap.Error(err),
		)
		return Customer{}, err
	}

	return c, tx.Commit()
}

// BulkCreate inserts the given rows in one transaction with a savepoint per
// row: a failing row is rolled back to its savepoint and reported, rows that
// succeeded stay in and commit together. Earlier rows of the same batch are
// visible to the email check, which is what catches intra-batch duplicates.
func (r *repository) BulkCreate(ctx context.Context, rows []BulkRow) ([]Customer, []RowError, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("method", "BulkCreate"),
		zap.Int("row_count", len(rows)),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var (
		created   []Customer
		rowErrors []RowError
	)

	for _, row := range rows {
		sp := fmt.Sprintf("bulk_row_%d", row.Index)
		if _, err := tx.ExecContext(ctx, "SAVEPOINT "+sp); err != nil {
			return nil, nil, err
		}

		var exists bool
		err := tx.QueryRowContext(ctx,
			"SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)",
			row.Data.Email,
		).Scan(&exists)
		if err == nil && exists {
			err = ErrEmailExists
		}

		var c Customer
		if err == nil {
			err = tx.QueryRowContext(ctx, `
				INSERT INTO customers (name, email, phone)
				VALUES ($1, $2, $3)
				RETURNING id, name, email, phone, created_at, updated_at
			`, row.Data.Name, row.Data.Email, row.Data.Phone).
				Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
			if isUniqueViolation(err) {
				err = ErrEmailExists
			}
		}

		if err != nil {
			if _, rbErr := tx.ExecContext(ctx, "ROLLBACK TO SAVEPOINT "+sp); rbErr != nil {
				return nil, nil, rbErr
			}
			rowErrors = append(rowErrors, RowError{Index: row.Index, Err: err})
			continue
		}

		if _, err := tx.ExecContext(ctx, "RELEASE SAVEPOINT "+sp); err != nil {
			return nil, nil, err
		}
		created = append(created, c)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	log.Info("bulk create committed",
		zap.Int("created", len(created)),
		zap.Int("failed", len(rowErrors)),
	)

	return created, rowErrors, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, created_at, updated_at
		FROM customers
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *repository) List(
	ctx context.Context,
	filter *model.CustomerFilterInput,
	sort *model.CustomerSortInput,
	limit, page *int32,
) ([]*Customer, error) {

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
		SELECT c.id, c.name, c.email, c.phone, c.created_at, c.updated_at
		FROM customers c
		WHERE 1=1
	`

	args := []any{}
	argIndex := 1

	if filter != nil {
		if filter.NameContains != nil && *filter.NameContains != "" {
			query += fmt.Sprintf(" AND c.name ILIKE $%d", argIndex)
			args = append(args, "%"+*filter.NameContains+"%")
			argIndex++
		}

		if filter.EmailContains != nil && *filter.EmailContains != "" {
			query += fmt.Sprintf(" AND c.email ILIKE $%d", argIndex)
			args = append(args, "%"+*filter.EmailContains+"%")
			argIndex++
		}

		if filter.CreatedAtGte != nil {
			query += fmt.Sprintf(" AND c.created_at >= $%d", argIndex)
			args = append(args, *filter.CreatedAtGte)
			argIndex++
		}

		if filter.CreatedAtLte != nil {
			query += fmt.Sprintf(" AND c.created_at <= $%d", argIndex)
			args = append(args, *filter.CreatedAtLte)
			argIndex++
		}

		if filter.PhonePrefix != nil && *filter.PhonePrefix != "" {
			query += fmt.Sprintf(" AND c.phone LIKE $%d", argIndex)
			args = append(args, *filter.PhonePrefix+"%")
			argIndex++
		}
	}

	orderBy := "c.created_at DESC"
	if sort != nil {
		dir := strings.ToUpper(string(sort.Direction))
		if dir != "ASC" && dir != "DESC" {
			dir = "DESC"
		}

		switch sort.Field {
		case model.CustomerSortFieldName:
			orderBy = "c.name " + dir
		case model.CustomerSortFieldEmail:
			orderBy = "c.email " + dir
		case model.CustomerSortFieldCreatedAt:
			orderBy = "c.created_at " + dir
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

	var customers []*Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}

	return customers, rows.Err()
}

func (r *repository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM customers").Scan(&n)
	return n, err
}
