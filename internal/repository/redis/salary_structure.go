package redis

import (
	"context"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type SalaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) *SalaryStructureRepository {
	return &SalaryStructureRepository{db: db}
}

func (r *SalaryStructureRepository) List(ctx context.Context) ([]payroll.SalaryStructure, error) {
	return hashValues[payroll.SalaryStructure](ctx, r.db, salaryStructureHashKey)
}

func (r *SalaryStructureRepository) Upsert(ctx context.Context, structure payroll.SalaryStructure) error {
	return hashSet(ctx, r.db, salaryStructureHashKey, structure.ID, structure)
}
