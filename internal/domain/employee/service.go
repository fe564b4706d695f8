package employee

import "context"

// EmployeeService defines business logic for employee records and the
// attendance/overtime marks hanging off them.
type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	// DeleteEmployee removes the record permanently. There is no
	// soft-delete or tombstone.
	DeleteEmployee(ctx context.Context, id string) error

	MarkAttendance(ctx context.Context, req MarkAttendanceRequest) error
	ClearAttendance(ctx context.Context, employeeID string, dateKey string) error
	BulkMarkAttendance(ctx context.Context, req BulkMarkAttendanceRequest) (int64, error)
	SetOvertime(ctx context.Context, req SetOvertimeRequest) error
}
