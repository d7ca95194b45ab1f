package customer

import (
	"context"
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"crm-be/internal/graph/model"
	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, input NewCustomer) (*Customer, error)
	BulkCreate(ctx context.Context, inputs []NewCustomer) ([]Customer, []string, error)
	GetByID(ctx context.Context, id uint) (*Customer, error)
	List(ctx context.Context, filter *model.CustomerFilterInput, sort *model.CustomerSortInput, limit, page *int32) ([]*Customer, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func validateInput(input NewCustomer) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrNameRequired
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return ErrInvalidEmail
	}
	if !ValidatePhone(input.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

func (s *service) Create(ctx context.Context, input NewCustomer) (*Customer, error) {
	log := logger.FromCtx(ctx).With(zap.String("email", input.Email))

	if err := validateInput(input); err != nil {
		log.Warn("customer input rejected", zap.Error(err))
		return nil, err
	}

	c, err := s.repo.Create(ctx, input)
	if err != nil {
		log.Warn("create customer failed", zap.Error(err))
		return nil, err
	}

	log.Info("customer created", zap.Uint("customer_id", c.ID))
	return &c, nil
}

// BulkCreate processes the inputs in request order with partial success.
// Rows failing the pure checks never reach the database; the rest run in one
// savepointed transaction. Error strings carry the 1-based row number.
func (s *service) BulkCreate(ctx context.Context, inputs []NewCustomer) ([]Customer, []string, error) {
	log := logger.FromCtx(ctx).With(zap.Int("row_count", len(inputs)))

	var (
		rows      []BulkRow
		rowErrors []RowError
	)

	for i, input := range inputs {
		if err := validateInput(input); err != nil {
			rowErrors = append(rowErrors, RowError{Index: i, Err: err})
			continue
		}
		rows = append(rows, BulkRow{Index: i, Data: input})
	}

	created, dbErrors, err := s.repo.BulkCreate(ctx, rows)
	if err != nil {
		log.Error("bulk create aborted", zap.Error(err))
		return nil, nil, err
	}

	rowErrors = append(rowErrors, dbErrors...)
	sort.Slice(rowErrors, func(i, j int) bool {
		return rowErrors[i].Index < rowErrors[j].Index
	})

	errStrings := make([]string, 0, len(rowErrors))
	for _, re := range rowErrors {
		errStrings = append(errStrings, fmt.Sprintf("Row %d: %s", re.Index+1, re.Err))
	}

	log.Info("bulk create finished",
		zap.Int("created", len(created)),
		zap.Int("failed", len(errStrings)),
	)

	return created, errStrings, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(
	ctx context.Context,
	filter *model.CustomerFilterInput,
	sortInput *model.CustomerSortInput,
	limit, page *int32,
) ([]*Customer, error) {
	return s.repo.List(ctx, filter, sortInput, limit, page)
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
