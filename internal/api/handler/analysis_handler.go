package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/analysis"
	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/service"
	"github.com/blaisecz/sleep-analysis/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

const maxWindowDays = 365

// AnalysisHandler handles the analysis endpoints.
type AnalysisHandler struct {
	service service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(service service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Analyze handles POST /v1/analysis
// @Summary Analyze a record batch
// @Description Run every analyzer over the supplied sleep, activity, stress and feedback records. Nothing is stored.
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body domain.RecordBatch true "Records to analyze"
// @Param days query integer false "Trend window in days" default(30) minimum(1) maximum(365)
// @Param now query string false "Trend reference instant (RFC3339); defaults to the end of the latest night" example(2024-01-31T12:00:00Z)
// @Success 200 {object} domain.ComprehensiveAnalysis "Comprehensive analysis"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Malformed records or invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analysis [post]
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	batch, opts, ok := decodeBatchRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeBatch(r.Context(), batch, opts)
	if err != nil {
		writeError(w, err, "Failed to analyze records")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// AnalyzeSection handles POST /v1/analysis/{section}
// @Summary Run one analyzer over a record batch
// @Description Run a single analyzer (summary, optimal-sleep, trends or correlations) over the supplied records.
// @Tags analysis
// @Accept json
// @Produce json
// @Param section path string true "Analyzer" Enums(summary, optimal-sleep, trends, correlations)
// @Param request body domain.RecordBatch true "Records to analyze"
// @Param days query integer false "Trend window in days" default(30) minimum(1) maximum(365)
// @Param now query string false "Trend reference instant (RFC3339)"
// @Success 200 {object} object "Analyzer output"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 404 {object} problem.Problem "Unknown analyzer"
// @Failure 422 {object} problem.Problem "Malformed records or invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analysis/{section} [post]
func (h *AnalysisHandler) AnalyzeSection(w http.ResponseWriter, r *http.Request) {
	section, err := analysis.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		problem.NotFound("Unknown analysis section").Write(w)
		return
	}

	batch, opts, ok := decodeBatchRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeBatchSection(r.Context(), batch, section, opts)
	if err != nil {
		writeError(w, err, "Failed to analyze records")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetUserAnalysis handles GET /v1/users/{userId}/analysis
// @Summary Analyze stored records
// @Description Fetch a user's stored records for a date range and run every analyzer.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "First date (YYYY-MM-DD); defaults to the lookback window" example(2024-01-01)
// @Param to query string false "Last date (YYYY-MM-DD); defaults to today" example(2024-01-31)
// @Param days query integer false "Trend window in days" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.UserAnalysisResponse "Comprehensive analysis"
// @Failure 400 {object} problem.Problem "Invalid user ID or date range"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analysis [get]
func (h *AnalysisHandler) GetUserAnalysis(w http.ResponseWriter, r *http.Request) {
	userID, q, ok := parseUserRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeUser(r.Context(), userID, q)
	if err != nil {
		writeError(w, err, "Failed to analyze records")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetUserAnalysisSection handles GET /v1/users/{userId}/analysis/{section}
// @Summary Run one analyzer over stored records
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param section path string true "Analyzer" Enums(summary, optimal-sleep, trends, correlations)
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param days query integer false "Trend window in days" default(30) minimum(1) maximum(365)
// @Success 200 {object} object "Analyzer output"
// @Failure 400 {object} problem.Problem "Invalid user ID or date range"
// @Failure 404 {object} problem.Problem "Unknown analyzer"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analysis/{section} [get]
func (h *AnalysisHandler) GetUserAnalysisSection(w http.ResponseWriter, r *http.Request) {
	section, err := analysis.ParseSection(chi.URLParam(r, "section"))
	if err != nil {
		problem.NotFound("Unknown analysis section").Write(w)
		return
	}

	userID, q, ok := parseUserRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeUserSection(r.Context(), userID, section, q)
	if err != nil {
		writeError(w, err, "Failed to analyze records")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetInsights handles GET /v1/users/{userId}/analysis/insights
// @Summary Get LLM-narrated sleep insights
// @Description Analyze a user's stored records and have the LLM explain the result.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param days query integer false "Trend window in days" default(30) minimum(1) maximum(365)
// @Success 200 {object} domain.InsightsResponse "Analysis with narrative"
// @Failure 400 {object} problem.Problem "Invalid user ID or date range"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/analysis/insights [get]
func (h *AnalysisHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	userID, q, ok := parseUserRequest(w, r)
	if !ok {
		return
	}

	result, err := h.service.Insights(r.Context(), userID, q)
	if err != nil {
		writeError(w, err, "Failed to generate insights")
		return
	}

	// Attach OTEL trace ID (if present) so the narrative can be looked up later
	span := trace.SpanFromContext(r.Context())
	if span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// decodeBatchRequest reads the record batch body and the days/now query
// parameters. It writes the problem response itself when ok is false.
func decodeBatchRequest(w http.ResponseWriter, r *http.Request) (domain.RecordBatch, analysis.Options, bool) {
	var batch domain.RecordBatch
	if err := json.NewDecoder(r.Body).Decode(&batch); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return batch, analysis.Options{}, false
	}

	var opts analysis.Options
	var fieldErrors []problem.FieldError

	days, fieldErr := parseWindowDays(r)
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	opts.WindowDays = days

	if nowStr := r.URL.Query().Get("now"); nowStr != "" {
		now, err := time.Parse(time.RFC3339, nowStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "now",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			opts.Now = now
		}
	}

	if len(fieldErrors) > 0 {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return batch, opts, false
	}
	return batch, opts, true
}

// parseUserRequest reads the userId path parameter and the from/to/days
// query parameters. It writes the problem response itself when ok is false.
func parseUserRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, service.UserQuery, bool) {
	var q service.UserQuery

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return userID, q, false
	}

	var fieldErrors []problem.FieldError
	from, fieldErr := parseDateParam(r, "from")
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	to, fieldErr := parseDateParam(r, "to")
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}
	days, fieldErr := parseWindowDays(r)
	if fieldErr != nil {
		fieldErrors = append(fieldErrors, *fieldErr)
	}

	if len(fieldErrors) > 0 {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return userID, q, false
	}

	q.From, q.To, q.WindowDays = from, to, days
	return userID, q, true
}

// parseWindowDays returns 0 when days is absent so the service default applies.
func parseWindowDays(r *http.Request) (int, *problem.FieldError) {
	days, ok := parseIntParam(r, "days", 0)
	if !ok || (r.URL.Query().Get("days") != "" && (days < 1 || days > maxWindowDays)) {
		return 0, &problem.FieldError{Field: "days", Message: "must be an integer between 1 and 365"}
	}
	return days, nil
}

func parseDateParam(r *http.Request, name string) (*domain.Date, *problem.FieldError) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, val)
	if err != nil {
		return nil, &problem.FieldError{Field: name, Message: "must be a date in YYYY-MM-DD format"}
	}
	d := domain.DateOf(t)
	return &d, nil
}
