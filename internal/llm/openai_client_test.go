package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/openai/openai-go/v3/option"
)

func completion(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   DefaultModel,
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(body)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIClient("test-key", "", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
}

func TestNewOpenAIClient_NoKey(t *testing.T) {
	if c := NewOpenAIClient("", ""); c != nil {
		t.Fatalf("expected nil client without API key")
	}

	var c *OpenAIClient
	if _, err := c.GenerateInsights(context.Background(), domain.AnalysisWindow{}, &domain.ComprehensiveAnalysis{}); !errors.Is(err, ErrOpenAIUnavailable) {
		t.Errorf("nil client error = %v, want ErrOpenAIUnavailable", err)
	}
}

func TestGenerateInsights(t *testing.T) {
	var prompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		prompt = string(raw)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completion(`{"summary":"Steady sleep.","observations":["a","b"],"guidance":["c"]}`))
	})

	analysis := &domain.ComprehensiveAnalysis{
		Trends: domain.SleepTrends{Trend: domain.TrendImproving, WeeklyChange: 30},
	}
	got, err := c.GenerateInsights(context.Background(), domain.AnalysisWindow{}, analysis)
	if err != nil {
		t.Fatalf("GenerateInsights() error = %v", err)
	}

	if got.Summary != "Steady sleep." || len(got.Observations) != 2 || len(got.Guidance) != 1 {
		t.Errorf("unexpected insights: %+v", got)
	}
	if !strings.Contains(prompt, `improving`) || !strings.Contains(prompt, DefaultModel) {
		t.Errorf("request did not carry the analysis and model: %s", prompt)
	}
}

func TestGenerateInsights_Errors(t *testing.T) {
	t.Run("non-json content", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, completion("Sure! Here are your insights."))
		})
		_, err := c.GenerateInsights(context.Background(), domain.AnalysisWindow{}, &domain.ComprehensiveAnalysis{})
		if !errors.Is(err, ErrOpenAIResponse) {
			t.Errorf("error = %v, want ErrOpenAIResponse", err)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"error":{"message":"bad","type":"invalid_request_error"}}`)
		})
		_, err := c.GenerateInsights(context.Background(), domain.AnalysisWindow{}, &domain.ComprehensiveAnalysis{})
		if !errors.Is(err, ErrOpenAIRequest) {
			t.Errorf("error = %v, want ErrOpenAIRequest", err)
		}
	})
}

func TestWithSystemPrompt(t *testing.T) {
	var prompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		prompt = string(raw)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, completion(`{"summary":"ok","observations":[],"guidance":[]}`))
	}).WithSystemPrompt("Answer as a terse sleep coach.").WithSystemPrompt("")

	if _, err := c.GenerateInsights(context.Background(), domain.AnalysisWindow{}, &domain.ComprehensiveAnalysis{}); err != nil {
		t.Fatalf("GenerateInsights() error = %v", err)
	}
	if !strings.Contains(prompt, "Answer as a terse sleep coach.") {
		t.Errorf("custom system prompt not sent: %s", prompt)
	}
	if strings.Contains(prompt, "non-medical sleep coaching assistant") {
		t.Errorf("default system prompt still sent")
	}

	var nilClient *OpenAIClient
	if nilClient.WithSystemPrompt("x") != nil {
		t.Errorf("nil client gained a value")
	}
}
