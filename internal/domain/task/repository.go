package task

import "context"

type TaskRepository interface {
	// GetAll returns every task ordered by due date ascending.
	GetAll(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	CountByStatus(ctx context.Context, status Status) (int, error)
	Create(ctx context.Context, newTask Task) (Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) error
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
}
