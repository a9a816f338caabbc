package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/openai/openai-go/option"
)

func TestOpenAIGenerate(t *testing.T) {
	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if len(body.Messages) > 0 {
			gotPrompt = body.Messages[0].Content
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1700000000,
			"model":   body.Model,
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]interface{}{"role": "assistant", "content": "Two blockers remain."},
				},
			},
		})
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "gpt-4o-mini", option.WithBaseURL(srv.URL))

	got, err := client.Generate(context.Background(), "summarize this")

	assert.Equal(t, nil, err)
	assert.Equal(t, "Two blockers remain.", got)
	assert.Equal(t, "summarize this", gotPrompt)
}

func TestOpenAIGenerate_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","created":1700000000,"model":"gpt-4o-mini","choices":[]}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "gpt-4o-mini", option.WithBaseURL(srv.URL))

	_, err := client.Generate(context.Background(), "summarize this")

	assert.Equal(t, true, errors.Is(err, ErrEmptyResponse))
}

func TestOpenAIGenerate_ServerErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"unavailable","type":"server_error"}}`))
	}))
	defer srv.Close()

	client := NewOpenAIClient("test-key", "gpt-4o-mini", option.WithBaseURL(srv.URL))

	_, err := client.Generate(context.Background(), "summarize this")

	var serviceErr *ServiceError
	assert.Equal(t, true, errors.As(err, &serviceErr))
	assert.Equal(t, "openai", serviceErr.Provider)
	assert.Equal(t, 1, calls)
}
