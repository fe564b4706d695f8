package employee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateKeyLayout is the canonical attendance map key: "2006-01-02".
const DateKeyLayout = "2006-01-02"

type Employee struct {
	ID          string
	Name        string
	Designation string
	Salary      decimal.Decimal
	City        *string
	Country     string
	Mobile      *string

	// Attendance maps a calendar day key to a mark. Sparse: a missing
	// day is unmarked and never counts toward payroll.
	Attendance map[string]AttendanceStatus

	// OvertimeHours maps a zero-padded "YYYY-MM" key to hours logged
	// for that month. Sparse: a missing month means zero overtime.
	OvertimeHours map[string]decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLeave   AttendanceStatus = "leave"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceLeave:
		return true
	}
	return false
}

// MonthKey builds the overtime map key for a period, zero-padded.
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// OvertimeForMonth returns the hours logged for the period, clamped to
// zero when the month is absent or holds a negative value.
func (e Employee) OvertimeForMonth(year int, month time.Month) decimal.Decimal {
	hours, ok := e.OvertimeHours[MonthKey(year, month)]
	if !ok || hours.IsNegative() {
		return decimal.Zero
	}
	return hours
}
