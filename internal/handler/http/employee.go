package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	MarkAttendance(w http.ResponseWriter, r *http.Request)
	ClearAttendance(w http.ResponseWriter, r *http.Request)
	BulkMarkAttendance(w http.ResponseWriter, r *http.Request)
	SetOvertime(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.ListEmployees(r.Context())
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	emp, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		slog.Error("Get employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq employee.CreateEmployeeRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service (validation happens inside)
	emp, err := h.employeeService.CreateEmployee(r.Context(), createReq)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", emp.ID)
	response.Created(w, "Employee created successfully", emp)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq employee.UpdateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	emp, err := h.employeeService.UpdateEmployee(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted", "employee_id", id)
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// MarkAttendance implements EmployeeHandler.
func (h *EmployeeHandlerImpl) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var markReq employee.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	markReq.EmployeeID = chi.URLParam(r, "id")

	if err := h.employeeService.MarkAttendance(r.Context(), markReq); err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance marked", nil)
}

// ClearAttendance implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ClearAttendance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	dateKey := chi.URLParam(r, "date")

	if err := h.employeeService.ClearAttendance(r.Context(), id, dateKey); err != nil {
		slog.Error("Clear attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance cleared", nil)
}

// BulkMarkAttendance implements EmployeeHandler.
func (h *EmployeeHandlerImpl) BulkMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var bulkReq employee.BulkMarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&bulkReq); err != nil {
		slog.Error("Bulk mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	marked, err := h.employeeService.BulkMarkAttendance(r.Context(), bulkReq)
	if err != nil {
		slog.Error("Bulk mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked in bulk", "date", bulkReq.Date, "marked", marked)
	response.SuccessWithMessage(w, "Attendance marked", map[string]int64{"marked": marked})
}

// SetOvertime implements EmployeeHandler.
func (h *EmployeeHandlerImpl) SetOvertime(w http.ResponseWriter, r *http.Request) {
	var overtimeReq employee.SetOvertimeRequest

	if err := json.NewDecoder(r.Body).Decode(&overtimeReq); err != nil {
		slog.Error("Set overtime decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	overtimeReq.EmployeeID = chi.URLParam(r, "id")

	if err := h.employeeService.SetOvertime(r.Context(), overtimeReq); err != nil {
		slog.Error("Set overtime service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime hours recorded", nil)
}
