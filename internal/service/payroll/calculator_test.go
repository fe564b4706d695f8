package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/domain/payroll"
)

func testEmployee(salary int64, attendance map[string]employee.AttendanceStatus, overtime map[string]decimal.Decimal) employee.Employee {
	return employee.Employee{
		ID:            "emp-1",
		Name:          "Ayesha Khan",
		Designation:   "Site Engineer",
		Salary:        decimal.NewFromInt(salary),
		Attendance:    attendance,
		OvertimeHours: overtime,
	}
}

func presentDays(year int, month time.Month, days int) map[string]employee.AttendanceStatus {
	attendance := make(map[string]employee.AttendanceStatus, days)
	for day := 1; day <= days; day++ {
		key := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(employee.DateKeyLayout)
		attendance[key] = employee.AttendancePresent
	}
	return attendance
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2024, time.July))
	assert.Equal(t, 30, DaysInMonth(2024, time.June))
	assert.Equal(t, 29, DaysInMonth(2024, time.February), "2024 is a leap year")
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
}

func TestCalculateSalaryInfo_BaseSalaryProRated(t *testing.T) {
	emp := testEmployee(15000, presentDays(2024, time.July, 20), nil)

	info, err := CalculateSalaryInfo(emp, 2024, time.July)
	require.NoError(t, err)

	assert.Equal(t, 20, info.TotalPresent)
	assert.Equal(t, "9677.42", info.BaseSalary.Round(2).String())
	assert.True(t, info.OvertimePay.IsZero())
	assert.Equal(t, "9677.42", info.TotalSalary.Round(2).String())
}

func TestCalculateSalaryInfo_WithOvertime(t *testing.T) {
	overtime := map[string]decimal.Decimal{
		"2024-07": decimal.NewFromInt(10),
	}
	emp := testEmployee(15000, presentDays(2024, time.July, 20), overtime)

	info, err := CalculateSalaryInfo(emp, 2024, time.July)
	require.NoError(t, err)

	// hourlyRate = 15000/176, overtimeRate = 1.5x, 10 hours
	assert.Equal(t, "1278.41", info.OvertimePay.Round(2).String())
	assert.Equal(t, "10955.83", info.TotalSalary.Round(2).String())
	assert.Equal(t, "10", info.OvertimeHours.String())
}

func TestCalculateSalaryInfo_OvertimeLinearity(t *testing.T) {
	single := testEmployee(15000, presentDays(2024, time.July, 20), map[string]decimal.Decimal{
		"2024-07": decimal.NewFromInt(7),
	})
	double := testEmployee(15000, presentDays(2024, time.July, 20), map[string]decimal.Decimal{
		"2024-07": decimal.NewFromInt(14),
	})

	singleInfo, err := CalculateSalaryInfo(single, 2024, time.July)
	require.NoError(t, err)
	doubleInfo, err := CalculateSalaryInfo(double, 2024, time.July)
	require.NoError(t, err)

	assert.True(t, singleInfo.OvertimePay.Mul(decimal.NewFromInt(2)).Equal(doubleInfo.OvertimePay),
		"doubling overtime hours must double overtime pay")
}

func TestCalculateSalaryInfo_TotalIsBasePlusOvertime(t *testing.T) {
	emp := testEmployee(12345, presentDays(2024, time.March, 17), map[string]decimal.Decimal{
		"2024-03": decimal.NewFromFloat(5.5),
	})

	info, err := CalculateSalaryInfo(emp, 2024, time.March)
	require.NoError(t, err)

	assert.True(t, info.TotalSalary.Equal(info.BaseSalary.Add(info.OvertimePay)))
}

func TestCalculateSalaryInfo_FullMonthEqualsSalary(t *testing.T) {
	emp := testEmployee(15000, presentDays(2024, time.June, 30), nil)

	info, err := CalculateSalaryInfo(emp, 2024, time.June)
	require.NoError(t, err)

	assert.Equal(t, 30, info.TotalPresent)
	assert.True(t, info.BaseSalary.Round(2).Equal(emp.Salary.Round(2)),
		"full attendance must pay the full fixed salary")
}

func TestCalculateSalaryInfo_IgnoresMarksOutsidePeriod(t *testing.T) {
	attendance := presentDays(2024, time.July, 5)
	attendance["2024-06-30"] = employee.AttendancePresent
	attendance["2024-08-01"] = employee.AttendancePresent
	attendance["2023-07-15"] = employee.AttendancePresent
	emp := testEmployee(15000, attendance, nil)

	info, err := CalculateSalaryInfo(emp, 2024, time.July)
	require.NoError(t, err)

	assert.Equal(t, 5, info.TotalPresent)
}

func TestCalculateSalaryInfo_AbsentAndLeaveDoNotCount(t *testing.T) {
	attendance := presentDays(2024, time.July, 3)
	attendance["2024-07-10"] = employee.AttendanceAbsent
	attendance["2024-07-11"] = employee.AttendanceLeave
	emp := testEmployee(15000, attendance, nil)

	info, err := CalculateSalaryInfo(emp, 2024, time.July)
	require.NoError(t, err)

	assert.Equal(t, 3, info.TotalPresent)
}

func TestCalculateSalaryInfo_MissingOvertimeIsZero(t *testing.T) {
	emp := testEmployee(15000, presentDays(2024, time.July, 10), nil)

	info, err := CalculateSalaryInfo(emp, 2024, time.July)
	require.NoError(t, err)

	assert.True(t, info.OvertimePay.IsZero())
	assert.True(t, info.OvertimeHours.IsZero())
}

func TestCalculateSalaryInfo_NegativeOvertimeClampedToZero(t *testing.T) {
	emp := testEmployee(15000, presentDays(2024, time.July, 10), map[string]decimal.Decimal{
		"2024-07": decimal.NewFromInt(-4),
	})

	info, err := CalculateSalaryInfo(emp, 2024, time.July)
	require.NoError(t, err)

	assert.True(t, info.OvertimePay.IsZero())
}

func TestCalculateSalaryInfo_InvalidMonth(t *testing.T) {
	emp := testEmployee(15000, nil, nil)

	_, err := CalculateSalaryInfo(emp, 2024, time.Month(0))
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)

	_, err = CalculateSalaryInfo(emp, 2024, time.Month(13))
	assert.ErrorIs(t, err, payroll.ErrInvalidPeriod)
}

func TestCalculateSalaryInfo_NoAttendance(t *testing.T) {
	emp := testEmployee(15000, nil, nil)

	info, err := CalculateSalaryInfo(emp, 2024, time.July)
	require.NoError(t, err)

	assert.Equal(t, 0, info.TotalPresent)
	assert.True(t, info.BaseSalary.IsZero())
	assert.True(t, info.TotalSalary.IsZero())
}
