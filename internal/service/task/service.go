package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitepulse/erp-backend-go/internal/domain/task"
)

type taskService struct {
	taskRepo task.TaskRepository
}

func NewTaskService(taskRepo task.TaskRepository) task.TaskService {
	return &taskService{taskRepo: taskRepo}
}

func (s *taskService) ListTasks(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, toTaskResponse(t))
	}

	return responses, nil
}

func (s *taskService) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to generate task id: %w", err)
	}

	dueDate, _ := time.Parse("2006-01-02", req.DueDate)

	t, err := s.taskRepo.Create(ctx, task.Task{
		ID:          id.String(),
		Title:       req.Title,
		Description: req.Description,
		Status:      task.Status(req.Status),
		Priority:    task.Priority(req.Priority),
		DueDate:     dueDate,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toTaskResponse(t), nil
}

func (s *taskService) UpdateTask(ctx context.Context, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.taskRepo.Update(ctx, req); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toTaskResponse(t), nil
}

func (s *taskService) ChangeStatus(ctx context.Context, req task.ChangeStatusRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	if err := s.taskRepo.UpdateStatus(ctx, req.ID, task.Status(req.Status)); err != nil {
		return task.TaskResponse{}, err
	}

	t, err := s.taskRepo.GetByID(ctx, req.ID)
	if err != nil {
		return task.TaskResponse{}, err
	}

	return toTaskResponse(t), nil
}

func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	return s.taskRepo.Delete(ctx, id)
}

func toTaskResponse(t task.Task) task.TaskResponse {
	return task.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate.Format("2006-01-02"),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}
