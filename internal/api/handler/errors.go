package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/internal/llm"
	"github.com/blaisecz/sleep-analysis/pkg/problem"
)

// writeError maps a service error onto a problem response. fallback is the
// detail used for unexpected errors.
func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrMalformedInput):
		problem.MalformedInput(err.Error()).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(err.Error()).Write(w)
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("Resource not found").Write(w)
	case errors.Is(err, domain.ErrProviderUnavailable):
		problem.ServiceUnavailable("Record store is unavailable").Write(w)
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		problem.BadGateway("Failed to generate insights from LLM").Write(w)
	default:
		problem.InternalError(fallback).Write(w)
	}
}

// parseIntParam parses an integer query parameter with a default value.
// ok is false when the parameter is present but not an integer.
func parseIntParam(r *http.Request, name string, defaultValue int) (int, bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue, false
	}
	return parsed, true
}
