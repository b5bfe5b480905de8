package redis

import (
	"context"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type PayrollRunRepository struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) *PayrollRunRepository {
	return &PayrollRunRepository{db: db}
}

func (r *PayrollRunRepository) GetByID(ctx context.Context, id string) (*payroll.PayrollRun, error) {
	return getJSON[payroll.PayrollRun](ctx, r.db, payrollRunKeyPrefix+id)
}

func (r *PayrollRunRepository) Create(ctx context.Context, run payroll.PayrollRun) error {
	return setJSON(ctx, r.db, payrollRunKeyPrefix+run.ID, run)
}

func (r *PayrollRunRepository) List(ctx context.Context) ([]payroll.PayrollRun, error) {
	return scanPrefix[payroll.PayrollRun](ctx, r.db, payrollRunKeyPrefix)
}
