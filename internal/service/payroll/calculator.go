package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/domain/payroll"
)

// The hourly rate divides the fixed monthly salary by a nominal 22-day,
// 8-hour month. This is deliberately NOT derived from the real calendar
// day count used for base-salary pro-ration: the two assumptions have
// always coexisted and downstream figures depend on them.
const nominalMonthlyHours = 22 * 8

var overtimeMultiplier = decimal.NewFromFloat(1.5)

// DaysInMonth returns the calendar day count for the period, leap years
// included.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CountPresent counts attendance entries marked present whose date key
// falls inside the period. Absent and leave marks never count, nor do
// marks from other months, nor unmarked days.
func CountPresent(attendance map[string]employee.AttendanceStatus, year int, month time.Month) int {
	count := 0
	for dateKey, status := range attendance {
		if status != employee.AttendancePresent {
			continue
		}
		d, err := time.Parse(employee.DateKeyLayout, dateKey)
		if err != nil {
			continue
		}
		if d.Year() == year && d.Month() == month {
			count++
		}
	}
	return count
}

// CalculateSalaryInfo derives the monetary breakdown for one employee
// in one period. Pure function: no I/O, no clock, no rounding (callers
// round to 2 fraction digits for display).
//
//	baseSalary  = salary / daysInMonth * totalPresent
//	hourlyRate  = salary / (22 * 8)
//	overtimePay = hourlyRate * 1.5 * overtimeHours[YYYY-MM]
//	totalSalary = baseSalary + overtimePay
func CalculateSalaryInfo(emp employee.Employee, year int, month time.Month) (payroll.SalaryInfo, error) {
	if month < time.January || month > time.December {
		return payroll.SalaryInfo{}, payroll.ErrInvalidPeriod
	}

	daysInMonth := DaysInMonth(year, month)
	totalPresent := CountPresent(emp.Attendance, year, month)

	baseSalary := emp.Salary.
		Div(decimal.NewFromInt(int64(daysInMonth))).
		Mul(decimal.NewFromInt(int64(totalPresent)))

	hourlyRate := emp.Salary.Div(decimal.NewFromInt(nominalMonthlyHours))
	overtimeHours := emp.OvertimeForMonth(year, month)
	overtimePay := hourlyRate.Mul(overtimeMultiplier).Mul(overtimeHours)

	return payroll.SalaryInfo{
		TotalPresent:  totalPresent,
		BaseSalary:    baseSalary,
		OvertimePay:   overtimePay,
		TotalSalary:   baseSalary.Add(overtimePay),
		OvertimeHours: overtimeHours,
	}, nil
}
