package http

import (
	"log/slog"
	"net/http"

	"github.com/paylite-hr/payroll-backend-go/internal/handler/http/response"
	auditService "github.com/paylite-hr/payroll-backend-go/internal/service/audit"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService auditService.Service
}

func NewAuditHandler(service auditService.Service) AuditHandler {
	return &AuditHandlerImpl{
		auditService: service,
	}
}

// List implements AuditHandler. Entries come back newest first.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditService.List(r.Context())
	if err != nil {
		slog.Error("ListAuditLogs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}
