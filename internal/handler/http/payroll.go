package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/auth"
	"github.com/tuankiet2005-art/CSW303-Project/internal/domain/payroll"
	"github.com/tuankiet2005-art/CSW303-Project/internal/handler/http/middleware"
	"github.com/tuankiet2005-art/CSW303-Project/internal/handler/http/response"
)

type PayrollHandler interface {
	MyProjection(w http.ResponseWriter, r *http.Request)
	MonthlySummary(w http.ResponseWriter, r *http.Request)
	PreviewRemaining(w http.ResponseWriter, r *http.Request)
	SetSalary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// MyProjection implements PayrollHandler. Data is null when the caller
// has no salary configured for the running month.
func (h *PayrollHandlerImpl) MyProjection(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.UserIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrUnauthorized)
		return
	}

	resp, err := h.payrollService.MyProjection(r.Context(), callerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// MonthlySummary implements PayrollHandler.
func (h *PayrollHandlerImpl) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		response.BadRequest(w, "month query parameter is required", nil)
		return
	}

	resp, err := h.payrollService.MonthlySummary(r.Context(), month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// PreviewRemaining implements PayrollHandler.
func (h *PayrollHandlerImpl) PreviewRemaining(w http.ResponseWriter, r *http.Request) {
	var req payroll.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Preview remaining decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.PreviewRemaining(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// SetSalary implements PayrollHandler.
func (h *PayrollHandlerImpl) SetSalary(w http.ResponseWriter, r *http.Request) {
	var req payroll.SetSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Set salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.SetSalary(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary saved", resp)
}
