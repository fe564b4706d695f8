package payroll

import "errors"

var (
	ErrInvalidPeriod = errors.New("invalid payroll period")
	ErrNoPayrollData = errors.New("no payroll data for this period")
)
