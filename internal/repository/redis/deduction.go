package redis

import (
	"context"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type DeductionRepository struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) *DeductionRepository {
	return &DeductionRepository{db: db}
}

func (r *DeductionRepository) List(ctx context.Context) ([]payroll.Deduction, error) {
	return hashValues[payroll.Deduction](ctx, r.db, deductionHashKey)
}

func (r *DeductionRepository) Upsert(ctx context.Context, deduction payroll.Deduction) error {
	return hashSet(ctx, r.db, deductionHashKey, deduction.ID, deduction)
}
