package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/sleep-analysis/internal/logging"
)

func newEnabled(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{
		BaseURL:     server.URL + "/",
		PublicKey:   "pk-test",
		SecretKey:   "sk-test",
		Environment: "testing",
	}, logging.Discard())
}

func TestNewClient_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "empty base URL",
			config: Config{BaseURL: "", PublicKey: "pk", SecretKey: "sk"},
		},
		{
			name:   "empty public key",
			config: Config{BaseURL: "http://localhost", PublicKey: "", SecretKey: "sk"},
		},
		{
			name:   "empty secret key",
			config: Config{BaseURL: "http://localhost", PublicKey: "pk", SecretKey: ""},
		},
		{
			name:   "all empty",
			config: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.config, logging.Discard())
			if c.IsEnabled() {
				t.Error("expected client to be disabled")
			}
			if err := c.CreateScore(context.Background(), ScoreInput{TraceID: "t", Value: 3}); err != nil {
				t.Errorf("disabled CreateScore error = %v", err)
			}
			if _, err := c.LoadPrompt(context.Background(), "sleep-insights", ""); !errors.Is(err, ErrDisabled) {
				t.Errorf("disabled LoadPrompt error = %v, want ErrDisabled", err)
			}
		})
	}
}

func TestCreateScore_EnabledClient(t *testing.T) {
	var receivedBody map[string]any
	var receivedAuth, receivedPath string

	c := newEnabled(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if ok {
			receivedAuth = user + ":" + pass
		}
		receivedPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &receivedBody)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"successes":[],"errors":[]}`))
	})

	err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "4bf92f3577b34da6a3ce929d0e0e4736",
		Name:    "insights_rating",
		Value:   4,
		Comment: "Useful",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if receivedAuth != "pk-test:sk-test" {
		t.Errorf("expected auth pk-test:sk-test, got %s", receivedAuth)
	}
	if receivedPath != "/api/public/ingestion" {
		t.Errorf("path = %s", receivedPath)
	}

	batch, ok := receivedBody["batch"].([]any)
	if !ok || len(batch) != 1 {
		t.Fatal("expected batch with 1 event")
	}
	event := batch[0].(map[string]any)
	if event["type"] != "score-create" {
		t.Errorf("expected type score-create, got %v", event["type"])
	}

	body := event["body"].(map[string]any)
	if body["traceId"] != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("unexpected traceId %v", body["traceId"])
	}
	if body["name"] != "insights_rating" {
		t.Errorf("expected name insights_rating, got %v", body["name"])
	}
	if body["value"] != 4.0 {
		t.Errorf("expected value 4, got %v", body["value"])
	}
	if body["environment"] != "testing" {
		t.Errorf("expected environment testing, got %v", body["environment"])
	}
}

func TestCreateScore_ServerError(t *testing.T) {
	c := newEnabled(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if err := c.CreateScore(context.Background(), ScoreInput{TraceID: "t", Name: "insights_rating", Value: 1}); err == nil {
		t.Error("expected error on server failure")
	}
}

func TestLoadPrompt(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		want     string
		wantErr  bool
	}{
		{
			name:     "text prompt",
			status:   http.StatusOK,
			response: `{"type":"text","prompt":"You are a sleep coach."}`,
			want:     "You are a sleep coach.",
		},
		{
			name:     "chat prompt keeps system messages",
			status:   http.StatusOK,
			response: `{"type":"chat","prompt":[{"role":"system","content":"Be brief."},{"role":"user","content":"{{analysis}}"},{"role":"system","content":"No medical advice."}]}`,
			want:     "Be brief.\n\nNo medical advice.",
		},
		{
			name:     "unsupported type",
			status:   http.StatusOK,
			response: `{"type":"image","prompt":"x"}`,
			wantErr:  true,
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			response: `{"message":"Prompt not found"}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotLabel string
			c := newEnabled(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				gotLabel = r.URL.Query().Get("label")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.response))
			})

			got, err := c.LoadPrompt(context.Background(), "sleep-insights", "production")
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadPrompt() error = %v, wantErr %v", err, tt.wantErr)
			}
			if gotPath != "/api/public/v2/prompts/sleep-insights" || gotLabel != "production" {
				t.Errorf("request = %s label=%s", gotPath, gotLabel)
			}
			if got != tt.want {
				t.Errorf("LoadPrompt() = %q, want %q", got, tt.want)
			}
		})
	}
}
