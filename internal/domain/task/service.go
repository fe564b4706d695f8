package task

import "context"

type TaskService interface {
	ListTasks(ctx context.Context) ([]TaskResponse, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	ChangeStatus(ctx context.Context, req ChangeStatusRequest) (TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
}
