package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/sleep-analysis/internal/api/validation"
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/service"
	"github.com/blaisecz/sleep-analysis/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ImportHandler stores record batches for later stored-data analysis.
type ImportHandler struct {
	service service.ImportService
}

func NewImportHandler(service service.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// Import handles POST /v1/users/{userId}/records
// @Summary Import records
// @Description Store a record batch for a user. The batch is validated as a whole before anything is written.
// @Tags records
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param timezone query string false "IANA timezone the nights were recorded in" default(UTC) example(Europe/Prague)
// @Param request body domain.RecordBatch true "Records to store"
// @Success 201 {object} domain.ImportResponse "Stored row counts"
// @Failure 400 {object} problem.Problem "Invalid user ID or request body"
// @Failure 422 {object} problem.Problem "Malformed records or invalid timezone"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/records [post]
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	timezone := r.URL.Query().Get("timezone")
	if timezone != "" {
		if errs := validation.Var("timezone", timezone, "timezone"); errs != nil {
			problem.ValidationError("Invalid query parameters", errs).Write(w)
			return
		}
	}

	var batch domain.RecordBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	result, err := h.service.Import(r.Context(), userID, batch, timezone)
	if err != nil {
		writeError(w, err, "Failed to import records")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}
