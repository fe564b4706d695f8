package expense

import "context"

type ExpenseService interface {
	ListExpenses(ctx context.Context) ([]ExpenseResponse, error)
	CreateExpense(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	UpdateExpense(ctx context.Context, req UpdateExpenseRequest) (ExpenseResponse, error)
	DeleteExpense(ctx context.Context, id string) error
}
