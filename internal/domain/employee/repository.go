package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error

	// SetAttendanceMark writes one day's mark. Idempotent per date key.
	SetAttendanceMark(ctx context.Context, id string, dateKey string, status AttendanceStatus) error
	// ClearAttendanceMark removes one day's mark, returning the day to
	// the unmarked state.
	ClearAttendanceMark(ctx context.Context, id string, dateKey string) error
	// BulkSetAttendanceMark writes one day's mark for many employees in
	// a single statement. Empty ids targets every employee.
	BulkSetAttendanceMark(ctx context.Context, ids []string, dateKey string, status AttendanceStatus) (int64, error)
	// SetOvertimeHours writes the hours for one month key. Idempotent
	// per month key.
	SetOvertimeHours(ctx context.Context, id string, monthKey string, hours decimal.Decimal) error
}
