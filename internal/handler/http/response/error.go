package response

import (
	"errors"
	"net/http"

	"github.com/sitepulse/erp-backend-go/internal/domain/admin"
	"github.com/sitepulse/erp-backend-go/internal/domain/auth"
	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/domain/expense"
	"github.com/sitepulse/erp-backend-go/internal/domain/extraction"
	"github.com/sitepulse/erp-backend-go/internal/domain/payroll"
	"github.com/sitepulse/erp-backend-go/internal/domain/report"
	"github.com/sitepulse/erp-backend-go/internal/domain/task"
	"github.com/sitepulse/erp-backend-go/internal/domain/user"
	"github.com/sitepulse/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidDateKey),
		errors.Is(err, employee.ErrInvalidMonthKey),
		errors.Is(err, employee.ErrInvalidAttendanceStatus),
		errors.Is(err, employee.ErrInvalidSalary),
		errors.Is(err, employee.ErrNegativeOvertime):
		BadRequest(w, err.Error(), nil)

	// Payroll and report errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, payroll.ErrNoPayrollData):
		NotFound(w, "No payroll data for this period")
	case errors.Is(err, report.ErrNoReportData):
		NotFound(w, "No data available for this report")

	// Expense and task errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	// Admin and user errors
	case errors.Is(err, admin.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, admin.ErrAdminExists):
		Conflict(w, "Admin already exists for this email")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// AI extraction errors
	case errors.Is(err, extraction.ErrExtractionFailed):
		BadGateway(w, "AI extraction failed")
	case errors.Is(err, extraction.ErrMalformedOutput):
		BadGateway(w, "AI extraction returned malformed output")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
