package employee

import "errors"

var (
	ErrEmployeeNotFound        = errors.New("employee not found")
	ErrInvalidSalary           = errors.New("salary must be a positive number")
	ErrInvalidAttendanceStatus = errors.New("attendance status must be present, absent or leave")
	ErrInvalidDateKey          = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonthKey         = errors.New("month must be in YYYY-MM format")
	ErrNegativeOvertime        = errors.New("overtime hours cannot be negative")
)
