package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const anthropicMaxTokens = 1024

type AnthropicClient struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAnthropicClient builds a client with SDK retries disabled.
func NewAnthropicClient(apiKey, model string, opts ...option.RequestOption) *AnthropicClient {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	client := anthropic.NewClient(opts...)
	return &AnthropicClient{
		client: &client,
		model:  anthropic.Model(model),
	}
}

func (c *AnthropicClient) Name() string {
	return "anthropic"
}

func (c *AnthropicClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: anthropicMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", &ServiceError{Provider: c.Name(), Err: err}
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	if sb.Len() == 0 {
		return "", &ServiceError{Provider: c.Name(), Err: ErrEmptyResponse}
	}

	return sb.String(), nil
}
