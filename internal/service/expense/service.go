package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/erp-backend-go/internal/domain/expense"
)

type expenseService struct {
	expenseRepo expense.ExpenseRepository
}

func NewExpenseService(expenseRepo expense.ExpenseRepository) expense.ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) ListExpenses(ctx context.Context) ([]expense.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}

	return responses, nil
}

func (s *expenseService) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to generate expense id: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	e, err := s.expenseRepo.Create(ctx, expense.Expense{
		ID:       id.String(),
		Date:     date,
		Name:     req.Name,
		Quantity: req.Quantity,
		Cost:     req.Cost,
	})
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toExpenseResponse(e), nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	if err := s.expenseRepo.Update(ctx, req); err != nil {
		return expense.ExpenseResponse{}, err
	}

	e, err := s.expenseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}

	return toExpenseResponse(e), nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	return s.expenseRepo.Delete(ctx, id)
}

func toExpenseResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:        e.ID,
		Date:      e.Date.Format("2006-01-02"),
		Name:      e.Name,
		Quantity:  e.Quantity,
		Cost:      e.Cost,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	}
}
