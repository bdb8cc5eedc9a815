package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const DefaultModel = "gpt-4o-mini"

// DefaultSystemPrompt is used unless a client is given another one.
const DefaultSystemPrompt = `You are a non-medical sleep coaching assistant.

You receive the statistical analysis of one user's sleep records: averages, an estimated optimal schedule, a short-term trend, and correlations between sleep and daily activity or stress. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's sleep in clear, neutral language.
- Explain the trend and what the weekly and monthly changes mean.
- Mention correlations only when their magnitude is at least 0.3 and their p-value is below 0.05; otherwise say they are inconclusive.
- Relate the optimal schedule to the user's average schedule.
- Give practical, behavioral suggestions to improve sleep habits.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- A trend of "insufficient_data" or an optimal basis of "default" means there is not enough data; say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the user's sleep over the window.",
  "observations": ["3-6 short observations grounded in the numbers."],
  "guidance": ["3-5 concrete, non-medical suggestions tailored to these numbers."]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's sleep analysis.

- "window" is the inclusive date range the records cover.
- "summary" holds average duration, efficiency and stage times (minutes, with hour equivalents).
- "optimal_sleep" is the estimated best bedtime, wake time and duration, and the basis it was derived from.
- "trends" classifies the last week against the week before.
- "correlations" relates steps, active minutes and stress to sleep duration and efficiency.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM turns an analysis into a narrative.
type InsightsLLM interface {
	GenerateInsights(ctx context.Context, window domain.AnalysisWindow, analysis *domain.ComprehensiveAnalysis) (*domain.NarrativeInsights, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = DefaultModel
	}

	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(opts...)

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: DefaultSystemPrompt,
	}
}

// WithSystemPrompt replaces the system prompt. An empty prompt is ignored.
func (c *OpenAIClient) WithSystemPrompt(prompt string) *OpenAIClient {
	if c != nil && prompt != "" {
		c.systemPrompt = prompt
	}
	return c
}

type promptPayload struct {
	Window domain.AnalysisWindow `json:"window"`
	*domain.ComprehensiveAnalysis
}

// GenerateInsights calls OpenAI to narrate analysis.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, window domain.AnalysisWindow, analysis *domain.ComprehensiveAnalysis) (*domain.NarrativeInsights, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	payload, err := json.MarshalIndent(promptPayload{Window: window, ComprehensiveAnalysis: analysis}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize analysis: %v", ErrOpenAIRequest, err)
	}

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(fmt.Sprintf(userPromptTemplate, string(payload))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	var output domain.NarrativeInsights
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
