package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitepulse/erp-backend-go/internal/domain/admin"
	"github.com/sitepulse/erp-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &AdminHandlerImpl{adminService: adminService}
}

// List implements AdminHandler.
func (h *AdminHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.ListAdmins(r.Context())
	if err != nil {
		slog.Error("List admins service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, admins)
}

// Create implements AdminHandler.
func (h *AdminHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq admin.CreateAdminRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create admin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	a, err := h.adminService.CreateAdmin(r.Context(), createReq)
	if err != nil {
		slog.Error("Create admin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin created", "admin_id", a.ID)
	response.Created(w, "Admin created successfully", a)
}

// Delete implements AdminHandler.
func (h *AdminHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.adminService.DeleteAdmin(r.Context(), id); err != nil {
		slog.Error("Delete admin service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Admin deleted", "admin_id", id)
	response.SuccessWithMessage(w, "Admin deleted successfully", nil)
}
