package dashboard

import "context"

type DashboardService interface {
	GetSummary(ctx context.Context) (SummaryResponse, error)

	// GetSalaryTrend returns the last six months of salary cost next to
	// expenses. The trailing five months use the full potential salary
	// (sum of fixed salaries, unadjusted for attendance); only the
	// current month uses the calculated figure.
	GetSalaryTrend(ctx context.Context) (TrendResponse, error)
}
