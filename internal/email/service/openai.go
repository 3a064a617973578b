package service

//go:generate mockgen -destination=../../mocks/mock_completion_client.go -package=mocks github.com/adarsh0128/Mailgic-AI/internal/email/service CompletionClient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// CompletionClient is the opaque text-completion collaborator. The rest of
// the service only ever sends a prompt pair and receives text back.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

type OpenAIConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type openAIClient struct {
	client *resty.Client
	model  string
}

// NewOpenAIClient builds a client for any OpenAI-compatible chat-completions
// endpoint. No retries are attempted; a failed call fails the request.
func NewOpenAIClient(cfg OpenAIConfig) CompletionClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout)

	return &openAIClient{client: cli, model: cfg.Model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (o *openAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	body := chatCompletionRequest{
		Model: o.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.7,
		MaxTokens:   maxTokens,
	}

	var result chatCompletionResponse
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/v1/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("chat completion request: status %d", resp.StatusCode())
	}

	if len(result.Choices) == 0 {
		return "", errors.New("chat completion response contains no choices")
	}

	return result.Choices[0].Message.Content, nil
}
