package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/paylite-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/paylite-hr/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ListPayslips(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListPayrollRuns(w http.ResponseWriter, r *http.Request)
	ListSalaryStructures(w http.ResponseWriter, r *http.Request)
	CreateSalaryStructure(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}

// ListPayslips implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	slips, err := h.payrollService.ListPayslips(r.Context())
	if err != nil {
		slog.Error("ListPayslips service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, slips)
}

// GetPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	slip, err := h.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		slog.Error("GetPayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, slip)
}

// ListPayrollRuns implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPayrollRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := h.payrollService.ListPayrollRuns(r.Context())
	if err != nil {
		slog.Error("ListPayrollRuns service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, runs)
}

// ListSalaryStructures implements PayrollHandler.
func (h *PayrollHandlerImpl) ListSalaryStructures(w http.ResponseWriter, r *http.Request) {
	structures, err := h.payrollService.ListSalaryStructures(r.Context())
	if err != nil {
		slog.Error("ListSalaryStructures service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, structures)
}

// CreateSalaryStructure implements PayrollHandler.
func (h *PayrollHandlerImpl) CreateSalaryStructure(w http.ResponseWriter, r *http.Request) {
	var createReq payroll.CreateSalaryStructureRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateSalaryStructure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	structure, err := h.payrollService.CreateSalaryStructure(r.Context(), createReq)
	if err != nil {
		slog.Error("CreateSalaryStructure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary structure created", structure)
}

// ListDeductions implements PayrollHandler.
func (h *PayrollHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	deductions, err := h.payrollService.ListDeductions(r.Context())
	if err != nil {
		slog.Error("ListDeductions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, deductions)
}
