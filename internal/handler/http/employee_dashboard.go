package http

import (
	"log/slog"
	"net/http"

	"github.com/paylite-hr/payroll-backend-go/internal/domain/employee_dashboard"
	"github.com/paylite-hr/payroll-backend-go/internal/handler/http/response"
)

type EmployeeDashboardHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type EmployeeDashboardHandlerImpl struct {
	dashboardService employee_dashboard.EmployeeDashboardService
}

func NewEmployeeDashboardHandler(dashboardService employee_dashboard.EmployeeDashboardService) EmployeeDashboardHandler {
	return &EmployeeDashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Get implements EmployeeDashboardHandler.
func (h *EmployeeDashboardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.dashboardService.GetDashboard(r.Context())
	if err != nil {
		slog.Error("GetDashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}
