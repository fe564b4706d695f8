package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
)

func newMockRepo(t *testing.T) (employee.EmployeeRepository, pgxmock.PgxPoolIface, context.Context) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := NewEmployeeRepository(nil)
	ctx := ContextWithQuerier(context.Background(), mock)
	return repo, mock, ctx
}

func employeeRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "name", "designation", "salary", "city", "country", "mobile",
		"attendance", "overtime_hours", "created_at", "updated_at",
	})
}

func TestEmployeeRepository_GetByID(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	now := time.Now()
	attendance := map[string]employee.AttendanceStatus{"2024-07-01": employee.AttendancePresent}
	overtime := map[string]decimal.Decimal{"2024-07": decimal.NewFromInt(10)}

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE id = \$1`).
		WithArgs("emp-1").
		WillReturnRows(employeeRows().AddRow(
			"emp-1", "Ayesha Khan", "Site Engineer", decimal.NewFromInt(15000),
			(*string)(nil), "Pakistan", (*string)(nil),
			attendance, overtime, now, now,
		))

	e, err := repo.GetByID(ctx, "emp-1")
	require.NoError(t, err)

	assert.Equal(t, "Ayesha Khan", e.Name)
	assert.True(t, e.Salary.Equal(decimal.NewFromInt(15000)))
	assert.Equal(t, employee.AttendancePresent, e.Attendance["2024-07-01"])
	assert.True(t, e.OvertimeHours["2024-07"].Equal(decimal.NewFromInt(10)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM employees WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(employeeRows())

	_, err := repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_GetAll(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM employees ORDER BY name`).
		WillReturnRows(employeeRows().
			AddRow("emp-1", "Ayesha", "Engineer", decimal.NewFromInt(15000),
				(*string)(nil), "Pakistan", (*string)(nil),
				map[string]employee.AttendanceStatus{}, map[string]decimal.Decimal{}, now, now).
			AddRow("emp-2", "Bilal", "Foreman", decimal.NewFromInt(9300),
				(*string)(nil), "Pakistan", (*string)(nil),
				map[string]employee.AttendanceStatus{}, map[string]decimal.Decimal{}, now, now))

	employees, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Ayesha", employees[0].Name)
	assert.Equal(t, "Bilal", employees[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_SetAttendanceMark(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	mock.ExpectExec(`UPDATE employees\s+SET attendance = jsonb_set`).
		WithArgs("emp-1", "2024-07-15", "present").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetAttendanceMark(ctx, "emp-1", "2024-07-15", employee.AttendancePresent)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_SetAttendanceMark_NotFound(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	mock.ExpectExec(`UPDATE employees\s+SET attendance = jsonb_set`).
		WithArgs("missing", "2024-07-15", "present").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.SetAttendanceMark(ctx, "missing", "2024-07-15", employee.AttendancePresent)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ClearAttendanceMark(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	mock.ExpectExec(`UPDATE employees\s+SET attendance = COALESCE\(attendance, '{}'::jsonb\) - \$2`).
		WithArgs("emp-1", "2024-07-15").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.ClearAttendanceMark(ctx, "emp-1", "2024-07-15")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_BulkSetAttendanceMark_AllEmployees(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	mock.ExpectExec(`UPDATE employees\s+SET attendance = jsonb_set`).
		WithArgs("2024-07-15", "present").
		WillReturnResult(pgxmock.NewResult("UPDATE", 7))

	marked, err := repo.BulkSetAttendanceMark(ctx, nil, "2024-07-15", employee.AttendancePresent)
	require.NoError(t, err)
	assert.Equal(t, int64(7), marked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_BulkSetAttendanceMark_Subset(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	ids := []string{"emp-1", "emp-2"}
	mock.ExpectExec(`(?s)UPDATE employees\s+SET attendance = jsonb_set.+WHERE id = ANY\(\$3\)`).
		WithArgs("2024-07-15", "absent", ids).
		WillReturnResult(pgxmock.NewResult("UPDATE", 2))

	marked, err := repo.BulkSetAttendanceMark(ctx, ids, "2024-07-15", employee.AttendanceAbsent)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_SetOvertimeHours(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	hours := decimal.NewFromFloat(12.5)
	mock.ExpectExec(`UPDATE employees\s+SET overtime_hours = jsonb_set`).
		WithArgs("emp-1", "2024-07", hours).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.SetOvertimeHours(ctx, "emp-1", "2024-07", hours)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Delete_NotFound(t *testing.T) {
	repo, mock, ctx := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM employees WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(ctx, "missing")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
