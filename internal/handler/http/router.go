package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/paylite-hr/payroll-backend-go/internal/handler/http/middleware"
	"github.com/paylite-hr/payroll-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	JWTService        jwt.Service
	FrontendURL       string
	Env               string
	AuthHandler       AuthHandler
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveHandler
	PayrollHandler    PayrollHandler
	EmployeeHandler   EmployeeHandler
	DashboardHandler  EmployeeDashboardHandler
	AuditHandler      AuditHandler
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.AuthHandler.Login)
			r.Post("/refresh", cfg.AuthHandler.RefreshToken)
			r.Post("/logout", cfg.AuthHandler.Logout)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))
				r.Get("/me", cfg.AuthHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(cfg.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(cfg.JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock", cfg.AttendanceHandler.Clock)
				r.Get("/my", cfg.AttendanceHandler.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", cfg.AttendanceHandler.List)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", cfg.LeaveHandler.Create)
				r.Get("/my", cfg.LeaveHandler.GetMyRequests)
				r.Get("/balance", cfg.LeaveHandler.GetMyBalance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", cfg.LeaveHandler.List)
					r.Patch("/{id}/decision", cfg.LeaveHandler.Decide)
					r.Get("/balances/{employeeId}", cfg.LeaveHandler.GetBalance)
				})
			})

			r.Route("/payslips", func(r chi.Router) {
				r.Get("/", cfg.PayrollHandler.ListPayslips)
				r.Get("/{id}", cfg.PayrollHandler.GetPayslip)
			})

			r.Get("/dashboard/employee", cfg.DashboardHandler.Get)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/payroll-runs", cfg.PayrollHandler.ListPayrollRuns)
				r.Get("/salary-structures", cfg.PayrollHandler.ListSalaryStructures)
				r.Post("/salary-structures", cfg.PayrollHandler.CreateSalaryStructure)
				r.Get("/deductions", cfg.PayrollHandler.ListDeductions)

				r.Route("/employees", func(r chi.Router) {
					r.Get("/", cfg.EmployeeHandler.List)
					r.Get("/{id}", cfg.EmployeeHandler.Get)
					r.Put("/{id}", cfg.EmployeeHandler.Update)
				})

				r.Get("/audit-logs", cfg.AuditHandler.List)
			})
		})
	})
	return r
}
