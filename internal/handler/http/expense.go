package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitepulse/erp-backend-go/internal/domain/expense"
	"github.com/sitepulse/erp-backend-go/internal/handler/http/response"
)

type ExpenseHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

// List implements ExpenseHandler.
func (h *ExpenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenseService.ListExpenses(r.Context())
	if err != nil {
		slog.Error("List expenses service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, expenses)
}

// Create implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq expense.CreateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	e, err := h.expenseService.CreateExpense(r.Context(), createReq)
	if err != nil {
		slog.Error("Create expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense created successfully", e)
}

// Update implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq expense.UpdateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	e, err := h.expenseService.UpdateExpense(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense updated successfully", e)
}

// Delete implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.expenseService.DeleteExpense(r.Context(), id); err != nil {
		slog.Error("Delete expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense deleted successfully", nil)
}
