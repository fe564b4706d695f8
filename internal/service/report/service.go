package report

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	domainpayroll "github.com/sitepulse/erp-backend-go/internal/domain/payroll"
	"github.com/sitepulse/erp-backend-go/internal/domain/report"
	"github.com/sitepulse/erp-backend-go/internal/service/payroll"
)

type reportService struct {
	employeeRepo   employee.EmployeeRepository
	payrollService domainpayroll.PayrollService
}

func NewReportService(employeeRepo employee.EmployeeRepository, payrollService domainpayroll.PayrollService) report.ReportService {
	return &reportService{
		employeeRepo:   employeeRepo,
		payrollService: payrollService,
	}
}

var statusMarks = map[employee.AttendanceStatus]string{
	employee.AttendancePresent: "P",
	employee.AttendanceAbsent:  "A",
	employee.AttendanceLeave:   "L",
}

func (s *reportService) GenerateMonthlyAttendanceReport(ctx context.Context, req report.MonthlyAttendanceReportRequest) (report.MonthlyAttendanceReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyAttendanceReport{}, err
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return report.MonthlyAttendanceReport{}, fmt.Errorf("failed to fetch roster: %w", err)
	}

	month := time.Month(req.Month)
	daysInMonth := payroll.DaysInMonth(req.Year, month)

	rows := make([]report.AttendanceReportRow, 0, len(employees))
	for _, emp := range employees {
		marks := make([]string, daysInMonth)
		for day := 1; day <= daysInMonth; day++ {
			dateKey := fmt.Sprintf("%04d-%02d-%02d", req.Year, req.Month, day)
			if mark, ok := statusMarks[emp.Attendance[dateKey]]; ok {
				marks[day-1] = mark
			} else {
				marks[day-1] = "-"
			}
		}

		info, err := payroll.CalculateSalaryInfo(emp, req.Year, month)
		if err != nil {
			return report.MonthlyAttendanceReport{}, err
		}

		rows = append(rows, report.AttendanceReportRow{
			EmployeeID:       emp.ID,
			EmployeeName:     emp.Name,
			DayMarks:         marks,
			TotalPresent:     info.TotalPresent,
			CalculatedSalary: info.BaseSalary.Round(2),
		})
	}

	return report.MonthlyAttendanceReport{
		Year:        req.Year,
		Month:       req.Month,
		DaysInMonth: daysInMonth,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}

func (s *reportService) ExportAttendanceCSV(ctx context.Context, req report.MonthlyAttendanceReportRequest) (string, string, error) {
	result, err := s.GenerateMonthlyAttendanceReport(ctx, req)
	if err != nil {
		return "", "", err
	}
	if len(result.Rows) == 0 {
		return "", "", report.ErrNoReportData
	}

	var b strings.Builder
	b.WriteString("Employee")
	for day := 1; day <= result.DaysInMonth; day++ {
		b.WriteString(",Day " + strconv.Itoa(day))
	}
	b.WriteString(",Total Present,Calculated Salary\n")

	for _, row := range result.Rows {
		b.WriteString(quoteCSVField(row.EmployeeName))
		for _, mark := range row.DayMarks {
			b.WriteString("," + mark)
		}
		fmt.Fprintf(&b, ",%d,%s\n", row.TotalPresent, row.CalculatedSalary.StringFixed(2))
	}

	filename := fmt.Sprintf("attendance-%04d-%02d.csv", req.Year, req.Month)
	return filename, b.String(), nil
}

func (s *reportService) ExportPayrollCSV(ctx context.Context, req report.MonthlyAttendanceReportRequest) (string, string, error) {
	if err := req.Validate(); err != nil {
		return "", "", err
	}

	result, err := s.payrollService.GeneratePayroll(ctx, domainpayroll.PeriodRequest{Year: req.Year, Month: req.Month})
	if err != nil {
		return "", "", err
	}
	if len(result.Rows) == 0 {
		return "", "", report.ErrNoReportData
	}

	var b strings.Builder
	b.WriteString("Employee,Total Present,Overtime Pay,Monthly Salary,Total Salary\n")
	for _, row := range result.Rows {
		fmt.Fprintf(&b, "%s,%d,%s,%s,%s\n",
			quoteCSVField(row.EmployeeName),
			row.TotalPresent,
			row.OvertimePay.StringFixed(2),
			row.MonthlySalary.StringFixed(2),
			row.TotalSalary.StringFixed(2),
		)
	}

	filename := fmt.Sprintf("payroll-%04d-%02d.csv", req.Year, req.Month)
	return filename, b.String(), nil
}

// quoteCSVField always quotes and doubles inner quotes. Names are quoted
// unconditionally so downstream parsers never depend on content sniffing.
func quoteCSVField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
