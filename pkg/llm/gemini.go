package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	return newGeminiClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newGeminiClient(ctx context.Context, cfg *genai.ClientConfig, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Name() string {
	return "gemini"
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &ServiceError{Provider: c.Name(), Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &ServiceError{Provider: c.Name(), Err: ErrEmptyResponse}
	}

	return text, nil
}
