package employee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-07", MonthKey(2024, time.July))
	assert.Equal(t, "2024-01", MonthKey(2024, time.January), "single-digit months are zero-padded")
	assert.Equal(t, "2024-12", MonthKey(2024, time.December))
}

func TestOvertimeForMonth(t *testing.T) {
	e := Employee{
		OvertimeHours: map[string]decimal.Decimal{
			"2024-07": decimal.NewFromInt(10),
			"2024-08": decimal.NewFromInt(-3),
		},
	}

	assert.Equal(t, "10", e.OvertimeForMonth(2024, time.July).String())
	assert.True(t, e.OvertimeForMonth(2024, time.June).IsZero(), "missing month defaults to zero")
	assert.True(t, e.OvertimeForMonth(2024, time.August).IsZero(), "negative hours are clamped to zero")

	var empty Employee
	assert.True(t, empty.OvertimeForMonth(2024, time.July).IsZero(), "nil map defaults to zero")
}

func TestAttendanceStatusValid(t *testing.T) {
	assert.True(t, AttendancePresent.Valid())
	assert.True(t, AttendanceAbsent.Valid())
	assert.True(t, AttendanceLeave.Valid())
	assert.False(t, AttendanceStatus("holiday").Valid())
	assert.False(t, AttendanceStatus("").Valid())
}
