package task

import (
	"github.com/sitepulse/erp-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Title) < 2 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must be at least 2 characters"})
	}
	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of 'To Do', 'In Progress', 'Done'"})
	}
	if !Priority(r.Priority).Valid() {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be one of 'Low', 'Medium', 'High'"})
	}
	if _, ok := validator.IsValidDate(r.DueDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID          string  `json:"-"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title != nil && len(*r.Title) < 2 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "must be at least 2 characters"})
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of 'To Do', 'In Progress', 'Done'"})
	}
	if r.Priority != nil && !Priority(*r.Priority).Valid() {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be one of 'Low', 'Medium', 'High'"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ChangeStatusRequest moves a task to any status. Transitions are
// unconstrained: any status may follow any other.
type ChangeStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *ChangeStatusRequest) Validate() error {
	if !Status(r.Status).Valid() {
		return validator.ValidationErrors{
			{Field: "status", Message: "must be one of 'To Do', 'In Progress', 'Done'"},
		}
	}
	return nil
}

type TaskResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     string  `json:"due_date"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
