package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sitepulse/erp-backend-go/internal/domain/payroll"
	"github.com/sitepulse/erp-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// parsePeriod reads year and month query parameters. Month is 1-12.
func parsePeriod(r *http.Request) (int, int) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	return year, month
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	year, month := parsePeriod(r)

	result, err := h.payrollService.GeneratePayroll(r.Context(), payroll.PeriodRequest{Year: year, Month: month})
	if err != nil {
		slog.Error("Generate payroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Summary implements PayrollHandler.
func (h *PayrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	year, month := parsePeriod(r)

	result, err := h.payrollService.GenerateSummary(r.Context(), payroll.SalarySummaryRequest{Year: year, Month: month})
	if err != nil {
		slog.Error("Payroll summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
