package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sitepulse/erp-backend-go/internal/domain/extraction"
	"github.com/sitepulse/erp-backend-go/internal/handler/http/response"
)

type ExtractionHandler interface {
	Extract(w http.ResponseWriter, r *http.Request)
	ExtractAndCreate(w http.ResponseWriter, r *http.Request)
}

type ExtractionHandlerImpl struct {
	extractionService extraction.ExtractionService
}

func NewExtractionHandler(extractionService extraction.ExtractionService) ExtractionHandler {
	return &ExtractionHandlerImpl{extractionService: extractionService}
}

// Extract implements ExtractionHandler.
func (h *ExtractionHandlerImpl) Extract(w http.ResponseWriter, r *http.Request) {
	var extractReq extraction.ExtractEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&extractReq); err != nil {
		slog.Error("Extract decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.extractionService.ExtractEmployees(r.Context(), extractReq)
	if err != nil {
		slog.Error("Extract service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExtractAndCreate implements ExtractionHandler.
func (h *ExtractionHandlerImpl) ExtractAndCreate(w http.ResponseWriter, r *http.Request) {
	var extractReq extraction.ExtractEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&extractReq); err != nil {
		slog.Error("Extract and create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.extractionService.ExtractAndCreateEmployees(r.Context(), extractReq)
	if err != nil {
		slog.Error("Extract and create service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employees created from extraction", "count", len(result.CreatedIDs))
	response.Created(w, "Employees created from extracted records", result)
}
