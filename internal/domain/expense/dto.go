package expense

import (
	"github.com/shopspring/decimal"

	"github.com/sitepulse/erp-backend-go/internal/pkg/validator"
)

type CreateExpenseRequest struct {
	Date     string          `json:"date"`
	Name     string          `json:"name"`
	Quantity *int            `json:"quantity,omitempty"`
	Cost     decimal.Decimal `json:"cost"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
	}
	if len(r.Name) < 2 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at least 2 characters"})
	}
	if r.Quantity != nil && *r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be a positive number"})
	}
	if !r.Cost.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "cost", Message: "must be a positive number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateExpenseRequest struct {
	ID       string           `json:"-"`
	Date     *string          `json:"date,omitempty"`
	Name     *string          `json:"name,omitempty"`
	Quantity *int             `json:"quantity,omitempty"`
	Cost     *decimal.Decimal `json:"cost,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "must be in YYYY-MM-DD format"})
		}
	}
	if r.Name != nil && len(*r.Name) < 2 {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must be at least 2 characters"})
	}
	if r.Quantity != nil && *r.Quantity <= 0 {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be a positive number"})
	}
	if r.Cost != nil && !r.Cost.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "cost", Message: "must be a positive number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ExpenseResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Name      string          `json:"name"`
	Quantity  *int            `json:"quantity,omitempty"`
	Cost      decimal.Decimal `json:"cost"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}
