package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/domain/expense"
	"github.com/sitepulse/erp-backend-go/internal/domain/task"
	"github.com/sitepulse/erp-backend-go/internal/service/payroll"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeEmployeeRepo) SetAttendanceMark(ctx context.Context, id string, dateKey string, status employee.AttendanceStatus) error {
	return nil
}

func (f *fakeEmployeeRepo) ClearAttendanceMark(ctx context.Context, id string, dateKey string) error {
	return nil
}

func (f *fakeEmployeeRepo) BulkSetAttendanceMark(ctx context.Context, ids []string, dateKey string, status employee.AttendanceStatus) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeRepo) SetOvertimeHours(ctx context.Context, id string, monthKey string, hours decimal.Decimal) error {
	return nil
}

type fakeExpenseRepo struct {
	expenses []expense.Expense
}

func (f *fakeExpenseRepo) GetAll(ctx context.Context) ([]expense.Expense, error) {
	return f.expenses, nil
}

func (f *fakeExpenseRepo) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	return expense.Expense{}, expense.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) GetByDateRange(ctx context.Context, from, to time.Time) ([]expense.Expense, error) {
	var out []expense.Expense
	for _, e := range f.expenses {
		if !e.Date.Before(from) && e.Date.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) Create(ctx context.Context, newExpense expense.Expense) (expense.Expense, error) {
	return newExpense, nil
}

func (f *fakeExpenseRepo) Update(ctx context.Context, req expense.UpdateExpenseRequest) error {
	return nil
}

func (f *fakeExpenseRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeTaskRepo struct {
	counts map[task.Status]int
}

func (f *fakeTaskRepo) GetAll(ctx context.Context) ([]task.Task, error) { return nil, nil }

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	return task.Task{}, task.ErrTaskNotFound
}

func (f *fakeTaskRepo) CountByStatus(ctx context.Context, status task.Status) (int, error) {
	return f.counts[status], nil
}

func (f *fakeTaskRepo) Create(ctx context.Context, newTask task.Task) (task.Task, error) {
	return newTask, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, req task.UpdateTaskRequest) error { return nil }

func (f *fakeTaskRepo) UpdateStatus(ctx context.Context, id string, status task.Status) error {
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id string) error { return nil }

func fixedClock() time.Time {
	return time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)
}

func presentJuly(days int) map[string]employee.AttendanceStatus {
	attendance := make(map[string]employee.AttendanceStatus, days)
	for day := 1; day <= days; day++ {
		key := time.Date(2024, time.July, day, 0, 0, 0, 0, time.UTC).Format(employee.DateKeyLayout)
		attendance[key] = employee.AttendancePresent
	}
	return attendance
}

func newTestService(employees []employee.Employee, expenses []expense.Expense, taskCounts map[task.Status]int) *dashboardService {
	employeeRepo := &fakeEmployeeRepo{employees: employees}
	svc := NewDashboardService(
		employeeRepo,
		&fakeExpenseRepo{expenses: expenses},
		&fakeTaskRepo{counts: taskCounts},
		payroll.NewPayrollService(employeeRepo, nil),
	).(*dashboardService)
	svc.now = fixedClock
	return svc
}

func TestGetSummary(t *testing.T) {
	employees := []employee.Employee{
		{ID: "a", Name: "Ayesha", Salary: decimal.NewFromInt(15000), Attendance: presentJuly(20)},
		{ID: "b", Name: "Bilal", Salary: decimal.NewFromInt(9300), Attendance: presentJuly(31)},
	}
	expenses := []expense.Expense{
		{ID: "e1", Date: time.Date(2024, time.July, 3, 0, 0, 0, 0, time.UTC), Cost: decimal.NewFromInt(500)},
		{ID: "e2", Date: time.Date(2024, time.July, 20, 0, 0, 0, 0, time.UTC), Cost: decimal.NewFromInt(250)},
		{ID: "e3", Date: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC), Cost: decimal.NewFromInt(9999)},
	}
	taskCounts := map[task.Status]int{
		task.StatusToDo:       3,
		task.StatusInProgress: 2,
		task.StatusDone:       7,
	}

	svc := newTestService(employees, expenses, taskCounts)

	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "18977.42", summary.CurrentMonthPayroll.String())
	assert.Equal(t, "750", summary.CurrentMonthExpense.String())
	assert.Equal(t, 2, summary.EmployeeCount)
	assert.Equal(t, 5, summary.OpenTaskCount, "done tasks are not open")
}

func TestGetSalaryTrend_AsymmetricMonths(t *testing.T) {
	employees := []employee.Employee{
		{ID: "a", Name: "Ayesha", Salary: decimal.NewFromInt(15000), Attendance: presentJuly(20)},
		{ID: "b", Name: "Bilal", Salary: decimal.NewFromInt(9300), Attendance: presentJuly(31)},
	}

	svc := newTestService(employees, nil, nil)

	trend, err := svc.GetSalaryTrend(context.Background())
	require.NoError(t, err)

	require.Len(t, trend.Points, 6)
	assert.Equal(t, "2024-02", trend.Points[0].Month)
	assert.Equal(t, "2024-07", trend.Points[5].Month)

	// Trailing months show the full potential salary regardless of
	// attendance; only the current month is attendance-adjusted.
	fullPotential := decimal.NewFromInt(24300)
	for _, point := range trend.Points[:5] {
		assert.True(t, point.Salary.Equal(fullPotential), "month %s", point.Month)
	}
	assert.Equal(t, "18977.42", trend.Points[5].Salary.String())
}

func TestGetSalaryTrend_ExpensesBucketedByMonth(t *testing.T) {
	expenses := []expense.Expense{
		{ID: "e1", Date: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC), Cost: decimal.NewFromInt(400)},
		{ID: "e2", Date: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), Cost: decimal.NewFromInt(120)},
	}

	svc := newTestService(nil, expenses, nil)

	trend, err := svc.GetSalaryTrend(context.Background())
	require.NoError(t, err)

	require.Len(t, trend.Points, 6)
	assert.Equal(t, "400", trend.Points[3].Expense.String())
	assert.Equal(t, "120", trend.Points[5].Expense.String())
	assert.True(t, trend.Points[0].Expense.IsZero())
}
