package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/domain/dashboard"
	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/domain/expense"
	"github.com/sitepulse/erp-backend-go/internal/domain/payroll"
	"github.com/sitepulse/erp-backend-go/internal/domain/task"
)

type dashboardService struct {
	employeeRepo   employee.EmployeeRepository
	expenseRepo    expense.ExpenseRepository
	taskRepo       task.TaskRepository
	payrollService payroll.PayrollService
	now            func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	expenseRepo expense.ExpenseRepository,
	taskRepo task.TaskRepository,
	payrollService payroll.PayrollService,
) dashboard.DashboardService {
	return &dashboardService{
		employeeRepo:   employeeRepo,
		expenseRepo:    expenseRepo,
		taskRepo:       taskRepo,
		payrollService: payrollService,
		now:            time.Now,
	}
}

func (s *dashboardService) GetSummary(ctx context.Context) (dashboard.SummaryResponse, error) {
	now := s.now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	expenses, err := s.expenseRepo.GetByDateRange(ctx, monthStart, monthEnd)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	expenseTotal := decimal.Zero
	for _, e := range expenses {
		expenseTotal = expenseTotal.Add(e.Cost)
	}

	openTasks, err := s.taskRepo.CountByStatus(ctx, task.StatusToDo)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count open tasks: %w", err)
	}
	inProgress, err := s.taskRepo.CountByStatus(ctx, task.StatusInProgress)
	if err != nil {
		return dashboard.SummaryResponse{}, fmt.Errorf("failed to count open tasks: %w", err)
	}

	payrollTotal := s.payrollService.AggregateMonthlyPayroll(employees, now.Year(), int(now.Month()))

	return dashboard.SummaryResponse{
		CurrentMonthPayroll: payrollTotal.Round(2),
		CurrentMonthExpense: expenseTotal.Round(2),
		EmployeeCount:       len(employees),
		OpenTaskCount:       openTasks + inProgress,
	}, nil
}

func (s *dashboardService) GetSalaryTrend(ctx context.Context) (dashboard.TrendResponse, error) {
	now := s.now().UTC()

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return dashboard.TrendResponse{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	// Full potential salary: every fixed salary summed, attendance
	// ignored. Used for the trailing months where the chart shows cost
	// commitment, not realized payout.
	fullPotential := decimal.Zero
	for _, emp := range employees {
		fullPotential = fullPotential.Add(emp.Salary)
	}

	points := make([]dashboard.TrendPoint, 0, 6)
	for offset := 5; offset >= 0; offset-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -offset, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		expenses, err := s.expenseRepo.GetByDateRange(ctx, monthStart, monthEnd)
		if err != nil {
			return dashboard.TrendResponse{}, fmt.Errorf("failed to fetch expenses: %w", err)
		}
		expenseTotal := decimal.Zero
		for _, e := range expenses {
			expenseTotal = expenseTotal.Add(e.Cost)
		}

		salary := fullPotential
		if offset == 0 {
			salary = s.payrollService.AggregateMonthlyPayroll(employees, monthStart.Year(), int(monthStart.Month()))
		}

		points = append(points, dashboard.TrendPoint{
			Month:   monthStart.Format("2006-01"),
			Salary:  salary.Round(2),
			Expense: expenseTotal.Round(2),
		})
	}

	return dashboard.TrendResponse{Points: points}, nil
}
