package redis

import (
	"context"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type PayslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) *PayslipRepository {
	return &PayslipRepository{db: db}
}

func (r *PayslipRepository) GetByID(ctx context.Context, id string) (*payroll.Payslip, error) {
	return getJSON[payroll.Payslip](ctx, r.db, payslipKeyPrefix+id)
}

func (r *PayslipRepository) Create(ctx context.Context, slip payroll.Payslip) error {
	return setJSON(ctx, r.db, payslipKeyPrefix+slip.ID, slip)
}

func (r *PayslipRepository) List(ctx context.Context) ([]payroll.Payslip, error) {
	return scanPrefix[payroll.Payslip](ctx, r.db, payslipKeyPrefix)
}
