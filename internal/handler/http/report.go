package http

import (
	"log/slog"
	"net/http"

	"github.com/sitepulse/erp-backend-go/internal/domain/report"
	"github.com/sitepulse/erp-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	MonthlyAttendance(w http.ResponseWriter, r *http.Request)
	ExportAttendanceCSV(w http.ResponseWriter, r *http.Request)
	ExportPayrollCSV(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// MonthlyAttendance implements ReportHandler.
func (h *ReportHandlerImpl) MonthlyAttendance(w http.ResponseWriter, r *http.Request) {
	year, month := parsePeriod(r)

	result, err := h.reportService.GenerateMonthlyAttendanceReport(r.Context(), report.MonthlyAttendanceReportRequest{Year: year, Month: month})
	if err != nil {
		slog.Error("Monthly attendance report service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportAttendanceCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportAttendanceCSV(w http.ResponseWriter, r *http.Request) {
	year, month := parsePeriod(r)

	filename, csv, err := h.reportService.ExportAttendanceCSV(r.Context(), report.MonthlyAttendanceReportRequest{Year: year, Month: month})
	if err != nil {
		slog.Error("Export attendance CSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeCSV(w, filename, csv)
}

// ExportPayrollCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportPayrollCSV(w http.ResponseWriter, r *http.Request) {
	year, month := parsePeriod(r)

	filename, csv, err := h.reportService.ExportPayrollCSV(r.Context(), report.MonthlyAttendanceReportRequest{Year: year, Month: month})
	if err != nil {
		slog.Error("Export payroll CSV service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeCSV(w, filename, csv)
}

func writeCSV(w http.ResponseWriter, filename string, csv string) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
