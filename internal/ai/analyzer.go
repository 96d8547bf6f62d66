// Package ai asks an OpenAI-compatible model to contextualize alert
// digests before they reach operators.
package ai

import (
	"NetSentry/internal/config"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const systemPrompt = "You are a network security analyst. You receive a digest of " +
	"intrusion detection alerts. Summarize the likely attack activity, group related " +
	"alerts, and suggest concrete first response steps. Answer in concise Markdown."

// Analyzer calls an OpenAI-compatible chat endpoint.
type Analyzer struct {
	cfg    *config.AIConfig
	client *openai.Client
}

// NewAnalyzer creates an analyzer from the configured endpoint.
func NewAnalyzer(cfg *config.AIConfig) (*Analyzer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("AI API key is not configured")
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &Analyzer{cfg: cfg, client: openai.NewClientWithConfig(clientConfig)}, nil
}

// AnalyzeAlerts sends the digest to the model and returns its Markdown
// analysis.
func (a *Analyzer) AnalyzeAlerts(ctx context.Context, summary string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     a.cfg.Model,
		MaxTokens: 2048,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: summary},
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
