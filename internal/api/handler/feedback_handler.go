package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/sleep-analysis/internal/api/validation"
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/service"
	"github.com/blaisecz/sleep-analysis/pkg/pagination"
	"github.com/blaisecz/sleep-analysis/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Create handles POST /v1/users/{userId}/feedback
// @Summary Record sleep feedback
// @Description Store the subjective rating for a date. A second submission for the same date replaces the first.
// @Tags feedback
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} domain.FeedbackResponse "Stored feedback"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/feedback [post]
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if errs := validation.Validate(req); errs != nil {
		problem.ValidationError("Request validation failed", errs).Write(w)
		return
	}

	entry, err := h.service.Record(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err, "Failed to record feedback")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entry.ToResponse())
}

// List handles GET /v1/users/{userId}/feedback
// @Summary List sleep feedback
// @Description Cursor-paginated feedback, newest date first.
// @Tags feedback
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "First date (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string false "Last date (YYYY-MM-DD)" example(2024-01-31)
// @Param limit query integer false "Page size" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} domain.FeedbackListResponse "Feedback page"
// @Failure 400 {object} problem.Problem "Invalid user ID, range or cursor"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/feedback [get]
func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseFeedbackFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, err, "Failed to list feedback")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func parseFeedbackFilter(r *http.Request) (domain.FeedbackFilter, []problem.FieldError) {
	var filter domain.FeedbackFilter
	var fieldErrors []problem.FieldError

	from, fieldErr := parseDateParam(r, "from")
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	filter.From = from

	to, fieldErr := parseDateParam(r, "to")
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	filter.To = to

	limit, ok := parseIntParam(r, "limit", pagination.DefaultLimit)
	if !ok || limit < 1 || limit > pagination.MaxLimit {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   "limit",
			Message: "must be an integer between 1 and 100",
		})
	} else {
		filter.Limit = limit
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
