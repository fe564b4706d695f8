package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitepulse/erp-backend-go/internal/domain/task"
	"github.com/sitepulse/erp-backend-go/internal/handler/http/response"
)

type TaskHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ChangeStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TaskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &TaskHandlerImpl{taskService: taskService}
}

// List implements TaskHandler.
func (h *TaskHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.ListTasks(r.Context())
	if err != nil {
		slog.Error("List tasks service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, tasks)
}

// Create implements TaskHandler.
func (h *TaskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq task.CreateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	t, err := h.taskService.CreateTask(r.Context(), createReq)
	if err != nil {
		slog.Error("Create task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", t)
}

// Update implements TaskHandler.
func (h *TaskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq task.UpdateTaskRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update task decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	t, err := h.taskService.UpdateTask(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated successfully", t)
}

// ChangeStatus implements TaskHandler.
func (h *TaskHandlerImpl) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var statusReq task.ChangeStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Change task status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	statusReq.ID = chi.URLParam(r, "id")

	t, err := h.taskService.ChangeStatus(r.Context(), statusReq)
	if err != nil {
		slog.Error("Change task status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", t)
}

// Delete implements TaskHandler.
func (h *TaskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.taskService.DeleteTask(r.Context(), id); err != nil {
		slog.Error("Delete task service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}
