package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/mstolarz/wellness-tracker/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical wellness tracking assistant.

You receive aggregated daily health statistics for a single user: sleep,
activity, hydration, nutrition, screen time and stress. You must base your
conclusions only on the provided data.

Your goals:
- Describe the user's recent wellness in clear, neutral language.
- Highlight patterns in the per-metric averages and per-category trends.
- Compare the recent window to the longer history.
- Give practical, behavioral suggestions to improve daily habits.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (sleep schedule, daily movement,
  drinking water, balanced meals, screen breaks, stress relief).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the user's wellness, comparing the recent window to the longer history.",
  "observations": [
    "3-6 bullet points about patterns in the averages and trends.",
    "At least one item comparing the recent window to the longer history."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion for the weakest category."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's wellness data.

- "history" and "recent" each contain per-metric averages, the average
  wellness score, and a trend label per category plus "Overall".
- "latest" is the most recent logged entry, if any.

Use:
- "history" to understand the long-term baseline (about 30 days),
- "recent" to see short-term changes (about 7 days),
- "latest" to judge how the most recent day compares to both.

JSON:

%s

Based on this data, respond in the required JSON format.`

// InsightsLLM is the interface for generating wellness insights using an LLM.
type InsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements InsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to generate wellness insights.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.InsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
