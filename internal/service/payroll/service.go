package payroll

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/domain/payroll"
	"github.com/sitepulse/erp-backend-go/internal/pkg/genai"
)

type payrollService struct {
	employeeRepo employee.EmployeeRepository
	genaiClient  *genai.Client
}

func NewPayrollService(employeeRepo employee.EmployeeRepository, genaiClient *genai.Client) payroll.PayrollService {
	return &payrollService{
		employeeRepo: employeeRepo,
		genaiClient:  genaiClient,
	}
}

func (s *payrollService) GeneratePayroll(ctx context.Context, req payroll.PeriodRequest) (payroll.MonthlyPayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.MonthlyPayrollResponse{}, err
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return payroll.MonthlyPayrollResponse{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	rows := make([]payroll.EmployeeRowResponse, 0, len(employees))
	total := decimal.Zero
	for _, emp := range employees {
		info, err := CalculateSalaryInfo(emp, req.Year, time.Month(req.Month))
		if err != nil {
			return payroll.MonthlyPayrollResponse{}, err
		}

		rows = append(rows, payroll.EmployeeRowResponse{
			EmployeeID:    emp.ID,
			EmployeeName:  emp.Name,
			Designation:   emp.Designation,
			MonthlySalary: emp.Salary,
			TotalPresent:  info.TotalPresent,
			BaseSalary:    info.BaseSalary.Round(2),
			OvertimePay:   info.OvertimePay.Round(2),
			TotalSalary:   info.TotalSalary.Round(2),
			OvertimeHours: info.OvertimeHours,
		})
		total = total.Add(info.TotalSalary)
	}

	return payroll.MonthlyPayrollResponse{
		Year:                req.Year,
		Month:               req.Month,
		Rows:                rows,
		TotalMonthlyPayroll: total.Round(2),
	}, nil
}

func (s *payrollService) AggregateMonthlyPayroll(employees []employee.Employee, year int, month int) decimal.Decimal {
	total := decimal.Zero
	for _, emp := range employees {
		info, err := CalculateSalaryInfo(emp, year, time.Month(month))
		if err != nil {
			continue
		}
		total = total.Add(info.TotalSalary)
	}
	return total
}

func (s *payrollService) GenerateSummary(ctx context.Context, req payroll.SalarySummaryRequest) (payroll.SalarySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalarySummaryResponse{}, err
	}

	result, err := s.GeneratePayroll(ctx, payroll.PeriodRequest{Year: req.Year, Month: req.Month})
	if err != nil {
		return payroll.SalarySummaryResponse{}, err
	}
	if len(result.Rows) == 0 {
		return payroll.SalarySummaryResponse{}, payroll.ErrNoPayrollData
	}

	summary, err := s.genaiClient.GenerateSalarySummary(ctx, genai.SalarySummaryRequest{
		Year:         req.Year,
		Month:        req.Month,
		EmployeeData: formatPayrollForSummary(result),
	})
	if err != nil {
		return payroll.SalarySummaryResponse{}, fmt.Errorf("failed to generate salary summary: %w", err)
	}

	return payroll.SalarySummaryResponse{
		Year:    req.Year,
		Month:   req.Month,
		Summary: summary,
	}, nil
}

// formatPayrollForSummary flattens the computed rows into the plain text
// block the AI gateway expects.
func formatPayrollForSummary(result payroll.MonthlyPayrollResponse) string {
	var b strings.Builder
	for _, row := range result.Rows {
		fmt.Fprintf(&b, "%s (%s): present %d days, base %s, overtime %s, total %s\n",
			row.EmployeeName, row.Designation, row.TotalPresent,
			row.BaseSalary.StringFixed(2), row.OvertimePay.StringFixed(2), row.TotalSalary.StringFixed(2),
		)
	}
	fmt.Fprintf(&b, "Total monthly payroll: %s\n", result.TotalMonthlyPayroll.StringFixed(2))
	return b.String()
}
