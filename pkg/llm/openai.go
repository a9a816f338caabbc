package llm

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client *openai.Client
	model  openai.ChatModel
}

// NewOpenAIClient builds a client with SDK retries disabled.
func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	opts = append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	client := openai.NewClient(opts...)
	return &OpenAIClient{
		client: &client,
		model:  openai.ChatModel(model),
	}
}

func (c *OpenAIClient) Name() string {
	return "openai"
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", &ServiceError{Provider: c.Name(), Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ServiceError{Provider: c.Name(), Err: ErrEmptyResponse}
	}

	return resp.Choices[0].Message.Content, nil
}
