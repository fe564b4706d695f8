package report

import "context"

type ReportService interface {
	GenerateMonthlyAttendanceReport(ctx context.Context, req MonthlyAttendanceReportRequest) (MonthlyAttendanceReport, error)

	// ExportAttendanceCSV renders the monthly attendance report as CSV:
	// [Employee, Day 1..Day N, Total Present, Calculated Salary].
	ExportAttendanceCSV(ctx context.Context, req MonthlyAttendanceReportRequest) (filename string, csv string, err error)

	// ExportPayrollCSV renders the monthly payroll rows as CSV:
	// [Employee, Total Present, Overtime Pay, Monthly Salary, Total Salary].
	ExportPayrollCSV(ctx context.Context, req MonthlyAttendanceReportRequest) (filename string, csv string, err error)
}
