package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/sleep-analysis/internal/api/validation"
	"github.com/blaisecz/sleep-analysis/internal/langfuse"
	"github.com/blaisecz/sleep-analysis/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RatingScoreName is the Langfuse score name insights ratings are stored under.
const RatingScoreName = "insights_rating"

// InsightsRatingRequest is the request body for rating an insights response.
// @Description Rating of a previous insights response.
type InsightsRatingRequest struct {
	// Trace ID from the insights response
	TraceID string `json:"trace_id" validate:"required,hexadecimal,len=32" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Optional comment
	Comment string `json:"comment,omitempty" validate:"max=1000" example:"The guidance was helpful"`
}

// RatingHandler forwards insights ratings to Langfuse.
type RatingHandler struct {
	langfuseClient langfuse.Client
	log            *logrus.Logger
}

func NewRatingHandler(langfuseClient langfuse.Client, log *logrus.Logger) *RatingHandler {
	return &RatingHandler{langfuseClient: langfuseClient, log: log}
}

// Create handles POST /v1/users/{userId}/analysis/insights/rating
// @Summary Rate sleep insights
// @Description Attach a user rating to the trace of a previous insights response.
// @Tags analysis
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body InsightsRatingRequest true "Rating"
// @Success 204 "Rating accepted"
// @Failure 400 {object} problem.Problem "Invalid user ID or request body"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Router /users/{userId}/analysis/insights/rating [post]
func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req InsightsRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if errs := validation.Validate(req); errs != nil {
		problem.ValidationError("Request validation failed", errs).Write(w)
		return
	}

	// Scoring failures are logged; the rating is still accepted
	err = h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    RatingScoreName,
		Value:   float64(req.Score),
		Comment: req.Comment,
	})
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{
			"user_id":  userID,
			"trace_id": req.TraceID,
		}).Warn("failed to store insights rating")
	}

	w.WriteHeader(http.StatusNoContent)
}
