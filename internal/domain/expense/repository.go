package expense

import (
	"context"
	"time"
)

type ExpenseRepository interface {
	GetAll(ctx context.Context) ([]Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]Expense, error)
	Create(ctx context.Context, newExpense Expense) (Expense, error)
	Update(ctx context.Context, req UpdateExpenseRequest) error
	Delete(ctx context.Context, id string) error
}
