package redis

import (
	"context"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
)

type AttendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// GetByEmployeeAndDate resolves the derived record id directly; no
// enumeration and no lookup race wider than the single hash field.
func (r *AttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	return hashGet[attendance.Attendance](ctx, r.db, attendanceHashKey, attendance.RecordID(employeeID, date))
}

func (r *AttendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) error {
	return hashSet(ctx, r.db, attendanceHashKey, att.ID, att)
}

func (r *AttendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	return hashValues[attendance.Attendance](ctx, r.db, attendanceHashKey)
}
