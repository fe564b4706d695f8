package payroll

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
)

// PayrollService computes payroll on read. Nothing is persisted: the
// breakdown is rederived from the employee roster on every call.
type PayrollService interface {
	// GeneratePayroll applies the salary calculation across the whole
	// roster for the period and totals the result.
	GeneratePayroll(ctx context.Context, req PeriodRequest) (MonthlyPayrollResponse, error)

	// AggregateMonthlyPayroll sums every employee's total salary for
	// the period over an already-fetched roster.
	AggregateMonthlyPayroll(employees []employee.Employee, year int, month int) decimal.Decimal

	// GenerateSummary asks the AI gateway for a prose analysis of the
	// period's computed payroll rows.
	GenerateSummary(ctx context.Context, req SalarySummaryRequest) (SalarySummaryResponse, error)
}
