package main

import (
	"fmt"
	"net/http"

	"github.com/paylite-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/paylite-hr/payroll-backend-go/internal/handler/http"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/jwt"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/lock"
	redisRepo "github.com/paylite-hr/payroll-backend-go/internal/repository/redis"
	attendanceService "github.com/paylite-hr/payroll-backend-go/internal/service/attendance"
	auditService "github.com/paylite-hr/payroll-backend-go/internal/service/audit"
	serviceAuth "github.com/paylite-hr/payroll-backend-go/internal/service/auth"
	employeeService "github.com/paylite-hr/payroll-backend-go/internal/service/employee"
	employeeDashboardService "github.com/paylite-hr/payroll-backend-go/internal/service/employee_dashboard"
	leaveService "github.com/paylite-hr/payroll-backend-go/internal/service/leave"
	payrollService "github.com/paylite-hr/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewRedisDB(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		fmt.Println("Error connecting to redis:", err)
		return
	}

	userRepo := redisRepo.NewUserRepository(db)
	employeeRepo := redisRepo.NewEmployeeRepository(db)
	attendanceRepo := redisRepo.NewAttendanceRepository(db)
	leaveRequestRepo := redisRepo.NewLeaveRequestRepository(db)
	leaveBalanceRepo := redisRepo.NewLeaveBalanceRepository(db)
	payslipRepo := redisRepo.NewPayslipRepository(db)
	payrollRunRepo := redisRepo.NewPayrollRunRepository(db)
	salaryStructureRepo := redisRepo.NewSalaryStructureRepository(db)
	deductionRepo := redisRepo.NewDeductionRepository(db)
	auditLogRepo := redisRepo.NewAuditLogRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	locker := lock.NewRedisLocker(db.Client)

	auditSvc := auditService.NewAuditService(auditLogRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, locker)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, leaveBalanceRepo, auditSvc, locker)
	payrollSvc := payrollService.NewPayrollService(payslipRepo, payrollRunRepo, salaryStructureRepo, deductionRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, auditSvc)
	empDashboardSvc := employeeDashboardService.NewEmployeeDashboardService(attendanceRepo, payslipRepo)

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		JWTService:        JWTService,
		FrontendURL:       cfg.App.FrontendURL,
		Env:               cfg.App.Env,
		AuthHandler:       appHTTP.NewAuthHandler(JWTService, authSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		PayrollHandler:    appHTTP.NewPayrollHandler(payrollSvc),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		DashboardHandler:  appHTTP.NewEmployeeDashboardHandler(empDashboardSvc),
		AuditHandler:      appHTTP.NewAuditHandler(auditSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
