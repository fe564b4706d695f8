package dashboard

import "github.com/shopspring/decimal"

type SummaryResponse struct {
	// CurrentMonthPayroll is the attendance-adjusted payroll for the
	// running month, recomputed on every read.
	CurrentMonthPayroll decimal.Decimal `json:"current_month_payroll"`
	CurrentMonthExpense decimal.Decimal `json:"current_month_expense"`
	EmployeeCount       int             `json:"employee_count"`
	OpenTaskCount       int             `json:"open_task_count"`
}

// TrendPoint is one month of the financial overview chart.
type TrendPoint struct {
	Month   string          `json:"month"` // "YYYY-MM"
	Salary  decimal.Decimal `json:"salary"`
	Expense decimal.Decimal `json:"expense"`
}

type TrendResponse struct {
	Points []TrendPoint `json:"points"`
}
