package redis

import (
	"context"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type EmployeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (*employee.Employee, error) {
	return hashGet[employee.Employee](ctx, r.db, employeeHashKey, id)
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return hashValues[employee.Employee](ctx, r.db, employeeHashKey)
}

func (r *EmployeeRepository) Upsert(ctx context.Context, emp employee.Employee) error {
	return hashSet(ctx, r.db, employeeHashKey, emp.ID, emp)
}
