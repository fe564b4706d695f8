package employee

import (
	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	Salary      decimal.Decimal `json:"salary"`
	City        *string         `json:"city,omitempty"`
	Country     string          `json:"country"`
	Mobile      *string         `json:"mobile,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Name) < 2 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at least 2 characters"})
	}
	if len(r.Designation) < 2 {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "is required"})
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a positive number"})
	}
	if len(r.Country) < 2 {
		errs = append(errs, validator.ValidationError{Field: "country", Message: "is required"})
	}
	if r.Mobile != nil && !validator.IsValidPhoneNumber(*r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: "must be a valid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Designation *string          `json:"designation,omitempty"`
	Salary      *decimal.Decimal `json:"salary,omitempty"`
	City        *string          `json:"city,omitempty"`
	Country     *string          `json:"country,omitempty"`
	Mobile      *string          `json:"mobile,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && len(*r.Name) < 2 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at least 2 characters"})
	}
	if r.Designation != nil && len(*r.Designation) < 2 {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "must be at least 2 characters"})
	}
	if r.Salary != nil && !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be a positive number"})
	}
	if r.Country != nil && len(*r.Country) < 2 {
		errs = append(errs, validator.ValidationError{Field: "country", Message: "must be at least 2 characters"})
	}
	if r.Mobile != nil && !validator.IsValidPhoneNumber(*r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: "must be a valid phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *MarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !AttendanceStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BulkMarkAttendanceRequest marks one date for many employees at once.
// An empty EmployeeIDs slice targets the whole roster.
type BulkMarkAttendanceRequest struct {
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
}

func (r *BulkMarkAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if !AttendanceStatus(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of present, absent, leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetOvertimeRequest struct {
	EmployeeID string          `json:"-"`
	MonthKey   string          `json:"month"`
	Hours      decimal.Decimal `json:"hours"`
}

func (r *SetOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonthKey(r.MonthKey); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if r.Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "cannot be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string                      `json:"id"`
	Name          string                      `json:"name"`
	Designation   string                      `json:"designation"`
	Salary        decimal.Decimal             `json:"salary"`
	City          *string                     `json:"city,omitempty"`
	Country       string                      `json:"country"`
	Mobile        *string                     `json:"mobile,omitempty"`
	Attendance    map[string]AttendanceStatus `json:"attendance,omitempty"`
	OvertimeHours map[string]decimal.Decimal  `json:"overtime_hours,omitempty"`
	CreatedAt     string                      `json:"created_at"`
	UpdatedAt     string                      `json:"updated_at"`
}
