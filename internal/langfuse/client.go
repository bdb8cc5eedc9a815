// Package langfuse talks to the Langfuse public API: it stores user ratings
// of generated insights as scores on the originating trace and fetches the
// insights system prompt from Langfuse prompt management.
//
// A client built without a base URL and both keys does nothing.
package langfuse

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	requestTimeout = 5 * time.Second
	ingestionPath  = "/api/public/ingestion"
	promptsPath    = "/api/public/v2/prompts/"
)

// Client is the Langfuse surface used by the API.
type Client interface {
	IsEnabled() bool
	// CreateScore attaches a numeric score to an existing trace.
	CreateScore(ctx context.Context, in ScoreInput) error
	// LoadPrompt returns the text of a prompt. Chat prompts are reduced to
	// their system messages.
	LoadPrompt(ctx context.Context, name, label string) (string, error)
}

// ScoreInput describes one score on a trace.
type ScoreInput struct {
	TraceID string
	Name    string
	Value   float64
	Comment string
}

type Config struct {
	BaseURL     string
	PublicKey   string
	SecretKey   string
	Environment string
}

type client struct {
	cfg     Config
	enabled bool
	http    *http.Client
}

// NewClient returns a Client for cfg. Missing credentials give a disabled
// client; the reason is logged once here.
func NewClient(cfg Config, log *logrus.Logger) Client {
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	c := &client{
		cfg:     cfg,
		enabled: cfg.BaseURL != "" && cfg.PublicKey != "" && cfg.SecretKey != "",
		http:    &http.Client{Timeout: 2 * requestTimeout},
	}

	entry := log.WithField("component", "langfuse")
	switch {
	case c.enabled:
		entry.WithFields(logrus.Fields{"base_url": cfg.BaseURL, "env": cfg.Environment}).Info("langfuse enabled")
	case cfg.BaseURL == "":
		entry.Debug("langfuse disabled: LANGFUSE_BASE_URL is empty")
	default:
		entry.Warn("langfuse disabled: public or secret key is empty")
	}
	return c
}

func (c *client) IsEnabled() bool {
	return c.enabled
}

func (c *client) CreateScore(ctx context.Context, in ScoreInput) error {
	if !c.enabled {
		return nil
	}

	batch := ingestionBatch{Batch: []ingestionEvent{{
		ID:        uuid.NewString(),
		Type:      "score-create",
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Body: scoreBody{
			ID:          uuid.NewString(),
			TraceID:     in.TraceID,
			Name:        in.Name,
			Value:       in.Value,
			Comment:     in.Comment,
			Environment: c.cfg.Environment,
		},
	}}}

	return c.do(ctx, http.MethodPost, ingestionPath, nil, batch, nil)
}

type ingestionBatch struct {
	Batch []ingestionEvent `json:"batch"`
}

type ingestionEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Body      any    `json:"body"`
}

type scoreBody struct {
	ID          string  `json:"id"`
	TraceID     string  `json:"traceId"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Comment     string  `json:"comment,omitempty"`
	Environment string  `json:"environment,omitempty"`
}
