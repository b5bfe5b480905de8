// seed loads the demo dataset: salary structures, employees with leave
// balances, login users, month-to-date attendance and deduction config.
//
// Usage:
//
//	REDIS_ADDR=localhost:6379 JWT_SECRET_KEY=dev go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/paylite-hr/payroll-backend-go/internal/config"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/employee"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/leave"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/user"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
	redisRepo "github.com/paylite-hr/payroll-backend-go/internal/repository/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewRedisDB(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error connecting to redis:", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := clearExisting(ctx, db); err != nil {
		fmt.Fprintln(os.Stderr, "Cleanup failed:", err)
		os.Exit(1)
	}

	if err := seed(ctx, db); err != nil {
		fmt.Fprintln(os.Stderr, "Seed failed:", err)
		os.Exit(1)
	}

	fmt.Println("Seeding completed successfully")
}

func clearExisting(ctx context.Context, db *database.DB) error {
	if err := db.Del(ctx,
		"payroll:employees",
		"payroll:salary_structures",
		"payroll:attendance",
		"payroll:leave_balances",
		"payroll:deductions",
	).Err(); err != nil {
		return fmt.Errorf("failed to delete hash namespaces: %w", err)
	}

	for _, pattern := range []string{"user:*", "leave:*", "payroll-run:*", "payslip:*", "audit-log:*"} {
		iter := db.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("failed to scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			if err := db.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete %s keys: %w", pattern, err)
			}
			fmt.Printf("Deleted %d keys for pattern %s\n", len(keys), pattern)
		}
	}
	return nil
}

func seed(ctx context.Context, db *database.DB) error {
	structureRepo := redisRepo.NewSalaryStructureRepository(db)
	employeeRepo := redisRepo.NewEmployeeRepository(db)
	balanceRepo := redisRepo.NewLeaveBalanceRepository(db)
	attendanceRepo := redisRepo.NewAttendanceRepository(db)
	deductionRepo := redisRepo.NewDeductionRepository(db)
	userRepo := redisRepo.NewUserRepository(db)

	fmt.Println("Seeding salary structures...")
	for _, structure := range salaryStructures() {
		if err := structureRepo.Upsert(ctx, structure); err != nil {
			return err
		}
	}

	fmt.Println("Seeding employees and leave balances...")
	employees := demoEmployees()
	for _, emp := range employees {
		if err := employeeRepo.Upsert(ctx, emp); err != nil {
			return err
		}
		if err := balanceRepo.Upsert(ctx, leave.LeaveBalance{
			EmployeeID: emp.ID,
			Casual:     10,
			Sick:       7,
			Paid:       15,
		}); err != nil {
			return err
		}
	}

	fmt.Println("Seeding users...")
	if err := seedUsers(ctx, userRepo, employees); err != nil {
		return err
	}

	fmt.Println("Seeding attendance...")
	if err := seedAttendance(ctx, attendanceRepo, employees); err != nil {
		return err
	}

	fmt.Println("Seeding deductions...")
	for _, d := range demoDeductions() {
		if err := deductionRepo.Upsert(ctx, d); err != nil {
			return err
		}
	}

	return nil
}

func seedUsers(ctx context.Context, userRepo *redisRepo.UserRepository, employees []employee.Employee) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := userRepo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        "admin@demo.com",
		PasswordHash: string(adminHash),
		Role:         user.RoleAdmin,
	}); err != nil {
		return err
	}
	fmt.Println("Admin -> admin@demo.com / admin123")

	for i := 0; i < 2 && i < len(employees); i++ {
		empHash, err := bcrypt.GenerateFromPassword([]byte("emp123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash employee password: %w", err)
		}
		employeeID := employees[i].ID
		email := fmt.Sprintf("emp%d@demo.com", i+1)
		if err := userRepo.Create(ctx, user.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(empHash),
			Role:         user.RoleEmployee,
			EmployeeID:   &employeeID,
		}); err != nil {
			return err
		}
		fmt.Printf("Employee -> %s / emp123\n", email)
	}
	return nil
}

// seedAttendance fills the current month up to today, weekdays only.
func seedAttendance(ctx context.Context, repo *redisRepo.AttendanceRepository, employees []employee.Employee) error {
	now := time.Now().UTC()
	year, month, _ := now.Date()

	for _, emp := range employees {
		for day := 1; day <= now.Day(); day++ {
			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				continue
			}

			status := attendance.StatusPresent
			if rand.Float64() <= 0.1 {
				status = attendance.StatusAbsent
			}
			var overtime float64
			if rand.Float64() > 0.8 {
				overtime = 2
			}

			dateStr := date.Format("2006-01-02")
			att := attendance.Attendance{
				ID:            attendance.RecordID(emp.ID, dateStr),
				EmployeeID:    emp.ID,
				Date:          dateStr,
				Status:        status,
				OvertimeHours: overtime,
			}
			if err := repo.Upsert(ctx, att); err != nil {
				return err
			}
		}
	}
	return nil
}

func salaryStructures() []payroll.SalaryStructure {
	return []payroll.SalaryStructure{
		{
			ID:               "sal-1",
			Name:             "Junior Level",
			BasicSalary:      decimal.NewFromInt(30000),
			HRA:              decimal.NewFromInt(12000),
			SpecialAllowance: decimal.NewFromInt(8000),
			Bonus:            decimal.Zero,
			VariablePay:      decimal.Zero,
			EmployerPF:       decimal.NewFromInt(3600),
			Insurance:        decimal.NewFromInt(500),
			EffectiveFrom:    "2024-01-01",
		},
		{
			ID:               "sal-2",
			Name:             "Mid Level",
			BasicSalary:      decimal.NewFromInt(50000),
			HRA:              decimal.NewFromInt(20000),
			SpecialAllowance: decimal.NewFromInt(15000),
			Bonus:            decimal.NewFromInt(5000),
			VariablePay:      decimal.Zero,
			EmployerPF:       decimal.NewFromInt(6000),
			Insurance:        decimal.NewFromInt(1000),
			EffectiveFrom:    "2024-01-01",
		},
		{
			ID:               "sal-3",
			Name:             "Senior Level",
			BasicSalary:      decimal.NewFromInt(80000),
			HRA:              decimal.NewFromInt(32000),
			SpecialAllowance: decimal.NewFromInt(28000),
			Bonus:            decimal.NewFromInt(10000),
			VariablePay:      decimal.NewFromInt(5000),
			EmployerPF:       decimal.NewFromInt(9600),
			Insurance:        decimal.NewFromInt(2000),
			EffectiveFrom:    "2024-01-01",
		},
	}
}

func demoEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID: "emp-1", EmployeeID: "EMP001", Name: "Sarah Johnson",
			Email: "sarah.johnson@company.com", Phone: "+1-555-0101",
			DateOfJoining: "2022-01-15", Department: "Engineering",
			Designation: "Senior Software Engineer", EmploymentType: "Full-time",
			BankAccount: "1234567890", IFSCCode: "BANK0001234", TaxID: "TAX123456",
			SalaryStructureID: "sal-3", IsActive: true,
		},
		{
			ID: "emp-2", EmployeeID: "EMP002", Name: "Michael Chen",
			Email: "michael.chen@company.com", Phone: "+1-555-0102",
			DateOfJoining: "2023-03-20", Department: "Engineering",
			Designation: "Software Engineer", EmploymentType: "Full-time",
			BankAccount: "2345678901", IFSCCode: "BANK0001234", TaxID: "TAX234567",
			SalaryStructureID: "sal-2", IsActive: true,
		},
		{
			ID: "emp-3", EmployeeID: "EMP003", Name: "Emily Rodriguez",
			Email: "emily.rodriguez@company.com", Phone: "+1-555-0103",
			DateOfJoining: "2023-06-10", Department: "Human Resources",
			Designation: "HR Manager", EmploymentType: "Full-time",
			BankAccount: "3456789012", IFSCCode: "BANK0001234", TaxID: "TAX345678",
			SalaryStructureID: "sal-2", IsActive: true,
		},
		{
			ID: "emp-4", EmployeeID: "EMP004", Name: "James Wilson",
			Email: "james.wilson@company.com", Phone: "+1-555-0104",
			DateOfJoining: "2024-01-05", Department: "Marketing",
			Designation: "Marketing Specialist", EmploymentType: "Full-time",
			BankAccount: "4567890123", IFSCCode: "BANK0001234", TaxID: "TAX456789",
			SalaryStructureID: "sal-1", IsActive: true,
		},
		{
			ID: "emp-5", EmployeeID: "EMP005", Name: "Lisa Anderson",
			Email: "lisa.anderson@company.com", Phone: "+1-555-0105",
			DateOfJoining: "2022-08-12", Department: "Finance",
			Designation: "Senior Accountant", EmploymentType: "Full-time",
			BankAccount: "5678901234", IFSCCode: "BANK0001234", TaxID: "TAX567890",
			SalaryStructureID: "sal-2", IsActive: true,
		},
		{
			ID: "emp-6", EmployeeID: "EMP006", Name: "David Kim",
			Email: "david.kim@company.com", Phone: "+1-555-0106",
			DateOfJoining: "2024-02-01", Department: "Engineering",
			Designation: "Junior Developer", EmploymentType: "Contract",
			BankAccount: "6789012345", IFSCCode: "BANK0001234", TaxID: "TAX678901",
			SalaryStructureID: "sal-1", IsActive: true,
		},
	}
}

func demoDeductions() []payroll.Deduction {
	return []payroll.Deduction{
		{ID: "ded-1", Name: "Income Tax", Type: payroll.DeductionTypePercentage, Value: decimal.NewFromInt(10), ApplicableToAll: true},
		{ID: "ded-2", Name: "Provident Fund", Type: payroll.DeductionTypePercentage, Value: decimal.NewFromInt(12), ApplicableToAll: true},
		{ID: "ded-3", Name: "Health Insurance", Type: payroll.DeductionTypeFixed, Value: decimal.NewFromInt(500), ApplicableToAll: true},
	}
}
