package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sitepulse/erp-backend-go/internal/domain/expense"
	"github.com/sitepulse/erp-backend-go/internal/pkg/database"
)

type expenseRepository struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}

const expenseColumns = `id, date, name, quantity, cost, created_at, updated_at`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(&e.ID, &e.Date, &e.Name, &e.Quantity, &e.Cost, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (r *expenseRepository) GetAll(ctx context.Context) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+expenseColumns+` FROM expenses ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanExpense(q.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	// Half-open range: from inclusive, to exclusive.
	rows, err := q.Query(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE date >= $1 AND date < $2 ORDER BY date`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by range: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read expenses: %w", err)
	}

	return expenses, nil
}

func (r *expenseRepository) Create(ctx context.Context, newExpense expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (id, date, name, quantity, cost)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + expenseColumns

	e, err := scanExpense(q.QueryRow(ctx, query,
		newExpense.ID, newExpense.Date, newExpense.Name, newExpense.Quantity, newExpense.Cost,
	))
	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return e, nil
}

func (r *expenseRepository) Update(ctx context.Context, req expense.UpdateExpenseRequest) error {
	q := GetQuerier(ctx, r.db)

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return fmt.Errorf("invalid date: %w", err)
		}
		date = &parsed
	}

	query := `
		UPDATE expenses
		SET date = COALESCE($2, date),
			name = COALESCE($3, name),
			quantity = COALESCE($4, quantity),
			cost = COALESCE($5, cost),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, date, req.Name, req.Quantity, req.Cost)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}
