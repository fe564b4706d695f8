package admin

import (
	"github.com/sitepulse/erp-backend-go/internal/pkg/validator"
)

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *CreateAdminRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdminResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}
