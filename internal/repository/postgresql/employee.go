package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/domain/employee"
	"github.com/sitepulse/erp-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `id, name, designation, salary, city, country, mobile, attendance, overtime_hours, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Designation, &e.Salary, &e.City, &e.Country, &e.Mobile,
		&e.Attendance, &e.OvertimeHours, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *employeeRepository) GetAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, name, designation, salary, city, country, mobile, attendance, overtime_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, '{}'::jsonb, '{}'::jsonb)
		RETURNING ` + employeeColumns

	e, err := scanEmployee(q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.Name, newEmployee.Designation, newEmployee.Salary,
		newEmployee.City, newEmployee.Country, newEmployee.Mobile,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = COALESCE($2, name),
			designation = COALESCE($3, designation),
			salary = COALESCE($4, salary),
			city = COALESCE($5, city),
			country = COALESCE($6, country),
			mobile = COALESCE($7, mobile),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		req.ID, req.Name, req.Designation, req.Salary, req.City, req.Country, req.Mobile,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete removes the row permanently.
func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) SetAttendanceMark(ctx context.Context, id string, dateKey string, status employee.AttendanceStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET attendance = jsonb_set(COALESCE(attendance, '{}'::jsonb), ARRAY[$2], to_jsonb($3::text), true),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, dateKey, string(status))
	if err != nil {
		return fmt.Errorf("failed to set attendance mark: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

func (r *employeeRepository) ClearAttendanceMark(ctx context.Context, id string, dateKey string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET attendance = COALESCE(attendance, '{}'::jsonb) - $2,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, dateKey)
	if err != nil {
		return fmt.Errorf("failed to clear attendance mark: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// BulkSetAttendanceMark is one UPDATE statement: atomic at the storage
// boundary, with no application-level coordination across rows.
func (r *employeeRepository) BulkSetAttendanceMark(ctx context.Context, ids []string, dateKey string, status employee.AttendanceStatus) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET attendance = jsonb_set(COALESCE(attendance, '{}'::jsonb), ARRAY[$1], to_jsonb($2::text), true),
			updated_at = NOW()
	`
	args := []interface{}{dateKey, string(status)}
	if len(ids) > 0 {
		query += ` WHERE id = ANY($3)`
		args = append(args, ids)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk set attendance: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *employeeRepository) SetOvertimeHours(ctx context.Context, id string, monthKey string, hours decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET overtime_hours = jsonb_set(COALESCE(overtime_hours, '{}'::jsonb), ARRAY[$2], to_jsonb($3::numeric), true),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, monthKey, hours)
	if err != nil {
		return fmt.Errorf("failed to set overtime hours: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
