package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/pkg/validator"
)

type PeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1-12, canonical convention across the API
}

func (r *PeriodRequest) Validate() error {
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

type EmployeeRowResponse struct {
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name"`
	Designation   string          `json:"designation"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	TotalPresent  int             `json:"total_present"`
	BaseSalary    decimal.Decimal `json:"base_calculated_salary"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	TotalSalary   decimal.Decimal `json:"total_salary"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

type MonthlyPayrollResponse struct {
	Year                int                   `json:"year"`
	Month               int                   `json:"month"`
	Rows                []EmployeeRowResponse `json:"rows"`
	TotalMonthlyPayroll decimal.Decimal       `json:"total_monthly_payroll"`
}

type SalarySummaryRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *SalarySummaryRequest) Validate() error {
	p := PeriodRequest{Year: r.Year, Month: r.Month}
	return p.Validate()
}

type SalarySummaryResponse struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Summary string `json:"summary"`
}
