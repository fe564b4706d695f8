package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/domain/payroll"
	"github.com/sitepulse/erp-backend-go/internal/pkg/genai"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
	err       error
}

func (f *fakeEmployeeRepo) GetAll(ctx context.Context) ([]employee.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepo) SetAttendanceMark(ctx context.Context, id string, dateKey string, status employee.AttendanceStatus) error {
	return nil
}

func (f *fakeEmployeeRepo) ClearAttendanceMark(ctx context.Context, id string, dateKey string) error {
	return nil
}

func (f *fakeEmployeeRepo) BulkSetAttendanceMark(ctx context.Context, ids []string, dateKey string, status employee.AttendanceStatus) (int64, error) {
	return int64(len(ids)), nil
}

func (f *fakeEmployeeRepo) SetOvertimeHours(ctx context.Context, id string, monthKey string, hours decimal.Decimal) error {
	return nil
}

func rosterEmployee(id string, salary int64, present int) employee.Employee {
	emp := testEmployee(salary, presentDays(2024, time.July, present), nil)
	emp.ID = id
	return emp
}

func TestGeneratePayroll_SumsRoster(t *testing.T) {
	repo := &fakeEmployeeRepo{employees: []employee.Employee{
		rosterEmployee("a", 15000, 20),
		rosterEmployee("b", 9300, 31),
	}}
	svc := NewPayrollService(repo, nil)

	result, err := svc.GeneratePayroll(context.Background(), payroll.PeriodRequest{Year: 2024, Month: 7})
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Equal(t, "9677.42", result.Rows[0].TotalSalary.String())
	assert.Equal(t, "9300", result.Rows[1].TotalSalary.String())

	expected := result.Rows[0].TotalSalary.Add(result.Rows[1].TotalSalary)
	assert.True(t, result.TotalMonthlyPayroll.Sub(expected).Abs().LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"fleet total must equal the sum of row totals")
}

func TestGeneratePayroll_OrderIndependent(t *testing.T) {
	a := rosterEmployee("a", 15000, 20)
	b := rosterEmployee("b", 8000, 12)
	c := rosterEmployee("c", 21000, 31)

	forward := NewPayrollService(&fakeEmployeeRepo{employees: []employee.Employee{a, b, c}}, nil)
	reverse := NewPayrollService(&fakeEmployeeRepo{employees: []employee.Employee{c, b, a}}, nil)

	resultForward, err := forward.GeneratePayroll(context.Background(), payroll.PeriodRequest{Year: 2024, Month: 7})
	require.NoError(t, err)
	resultReverse, err := reverse.GeneratePayroll(context.Background(), payroll.PeriodRequest{Year: 2024, Month: 7})
	require.NoError(t, err)

	assert.True(t, resultForward.TotalMonthlyPayroll.Equal(resultReverse.TotalMonthlyPayroll))
}

func TestGeneratePayroll_EmptyRoster(t *testing.T) {
	svc := NewPayrollService(&fakeEmployeeRepo{}, nil)

	result, err := svc.GeneratePayroll(context.Background(), payroll.PeriodRequest{Year: 2024, Month: 7})
	require.NoError(t, err)

	assert.Empty(t, result.Rows)
	assert.True(t, result.TotalMonthlyPayroll.IsZero())
}

func TestGeneratePayroll_RosterFetchFailure(t *testing.T) {
	repo := &fakeEmployeeRepo{err: errors.New("connection refused")}
	svc := NewPayrollService(repo, nil)

	_, err := svc.GeneratePayroll(context.Background(), payroll.PeriodRequest{Year: 2024, Month: 7})
	assert.Error(t, err)
}

func TestGeneratePayroll_InvalidPeriod(t *testing.T) {
	svc := NewPayrollService(&fakeEmployeeRepo{}, nil)

	_, err := svc.GeneratePayroll(context.Background(), payroll.PeriodRequest{Year: 2024, Month: 0})
	assert.Error(t, err)

	_, err = svc.GeneratePayroll(context.Background(), payroll.PeriodRequest{Year: 2024, Month: 13})
	assert.Error(t, err)
}

func TestAggregateMonthlyPayroll(t *testing.T) {
	svc := NewPayrollService(&fakeEmployeeRepo{}, nil)

	employees := []employee.Employee{
		rosterEmployee("a", 15000, 20),
		rosterEmployee("b", 9300, 31),
	}

	total := svc.AggregateMonthlyPayroll(employees, 2024, 7)
	assert.Equal(t, "18977.42", total.Round(2).String())

	assert.True(t, svc.AggregateMonthlyPayroll(nil, 2024, 7).IsZero())
}

func TestGenerateSummary(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/flows/monthly-salary-summary", r.URL.Path)

		var req genai.SalarySummaryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 2024, req.Year)
		assert.Contains(t, req.EmployeeData, "Ayesha Khan")

		_ = json.NewEncoder(w).Encode(map[string]string{"summary": "Payroll is stable this month."})
	}))
	defer gateway.Close()

	repo := &fakeEmployeeRepo{employees: []employee.Employee{rosterEmployee("a", 15000, 20)}}
	svc := NewPayrollService(repo, genai.NewClient(gateway.URL, "test-key"))

	result, err := svc.GenerateSummary(context.Background(), payroll.SalarySummaryRequest{Year: 2024, Month: 7})
	require.NoError(t, err)
	assert.Equal(t, "Payroll is stable this month.", result.Summary)
}

func TestGenerateSummary_NoData(t *testing.T) {
	svc := NewPayrollService(&fakeEmployeeRepo{}, nil)

	_, err := svc.GenerateSummary(context.Background(), payroll.SalarySummaryRequest{Year: 2024, Month: 7})
	assert.ErrorIs(t, err, payroll.ErrNoPayrollData)
}
