package payroll

import "github.com/shopspring/decimal"

// SalaryInfo is the monetary breakdown for one employee in one period.
// Amounts carry full precision; rounding to 2 fraction digits happens at
// the presentation boundary only.
type SalaryInfo struct {
	TotalPresent  int
	BaseSalary    decimal.Decimal
	OvertimePay   decimal.Decimal
	TotalSalary   decimal.Decimal
	OvertimeHours decimal.Decimal
}
