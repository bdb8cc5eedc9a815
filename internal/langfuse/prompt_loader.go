package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ErrDisabled is returned by LoadPrompt on a client without credentials.
var ErrDisabled = errors.New("langfuse integration disabled")

type promptEnvelope struct {
	Type   string          `json:"type"`
	Prompt json.RawMessage `json:"prompt"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *client) LoadPrompt(ctx context.Context, name, label string) (string, error) {
	if !c.enabled {
		return "", ErrDisabled
	}

	var query url.Values
	if label != "" {
		query = url.Values{"label": {label}}
	}

	var env promptEnvelope
	if err := c.do(ctx, http.MethodGet, promptsPath+url.PathEscape(name), query, nil, &env); err != nil {
		return "", err
	}
	return env.text()
}

// text flattens the prompt. Only system messages survive from a chat
// prompt since the user turn is generated from the analysis.
func (p promptEnvelope) text() (string, error) {
	switch p.Type {
	case "", "text":
		var s string
		if err := json.Unmarshal(p.Prompt, &s); err != nil {
			return "", fmt.Errorf("langfuse: text prompt: %w", err)
		}
		return s, nil
	case "chat":
		var msgs []chatMessage
		if err := json.Unmarshal(p.Prompt, &msgs); err != nil {
			return "", fmt.Errorf("langfuse: chat prompt: %w", err)
		}
		var system []string
		for _, m := range msgs {
			if m.Role == "system" && m.Content != "" {
				system = append(system, m.Content)
			}
		}
		return strings.Join(system, "\n\n"), nil
	}
	return "", fmt.Errorf("langfuse: unsupported prompt type %q", p.Type)
}
