package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"smart-life-agent/internal/config"
	"smart-life-agent/internal/logger"
	"smart-life-agent/internal/service"
)

type aiClient struct {
	provider   string
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

const (
	ProviderGroq     = "groq"
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
)

func NewAIClient(apiKey string, logger *logger.Logger) service.AIClient {
	provider := config.GetEnv("AI_PROVIDER", ProviderGroq)

	return &aiClient{
		provider:   provider,
		apiKey:     apiKey,
		baseURL:    getBaseURL(provider),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// getBaseURL returns the chat-completions endpoint root for the provider.
// All three providers speak the OpenAI wire format.
func getBaseURL(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "https://api.openai.com/v1"
	case ProviderDeepSeek:
		return "https://api.deepseek.com"
	default:
		return "https://api.groq.com/openai/v1"
	}
}

// getModel returns the default model for the provider.
func getModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o"
	case ProviderDeepSeek:
		return "deepseek-chat"
	default:
		return "llama-3.3-70b-versatile"
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Index        int     `json:"index"`
	Message      message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Complete sends one request carrying a system instruction and user content
// and returns the raw response text. Parsing and validation of that text
// belong to the caller.
func (a *aiClient) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	request := chatCompletionRequest{
		Model: getModel(a.provider),
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	resp, err := a.makeRequest(ctx, request)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from AI provider %s", a.provider)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// makeRequest performs the HTTP round trip to the provider.
func (a *aiClient) makeRequest(ctx context.Context, request chatCompletionRequest) (*chatCompletionResponse, error) {
	jsonData, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := a.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.apiKey)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &chatResp, nil
}
