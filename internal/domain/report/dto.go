package report

import (
	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/pkg/validator"
)

type MonthlyAttendanceReportRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12
}

func (r *MonthlyAttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid calendar year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceReportRow is one employee's month at a glance: a mark per
// calendar day ("P", "A", "L" or "-" for unmarked) plus the pro-rated
// salary for days present.
type AttendanceReportRow struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	DayMarks         []string        `json:"day_marks"`
	TotalPresent     int             `json:"total_present"`
	CalculatedSalary decimal.Decimal `json:"calculated_salary"`
}

type MonthlyAttendanceReport struct {
	Year        int                   `json:"year"`
	Month       int                   `json:"month"`
	DaysInMonth int                   `json:"days_in_month"`
	GeneratedAt string                `json:"generated_at"`
	Rows        []AttendanceReportRow `json:"rows"`
}
