package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type fakeBackend struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeBackend) Name() string {
	return "fake"
}

func (f *fakeBackend) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func TestSummarize_EmptyMessagesSkipsBackend(t *testing.T) {
	backend := &fakeBackend{text: "should not be used"}
	s := NewSummarizer(backend)

	got, err := s.Summarize(context.Background(), SummaryInput{Date: "2024-01-01", ChannelName: "frontend"})

	assert.Equal(t, nil, err)
	assert.Equal(t, "No messages found for this date.", got)
	assert.Equal(t, 0, backend.calls)
}

func TestSummarize_ReturnsBackendTextVerbatim(t *testing.T) {
	backend := &fakeBackend{text: "  Team shipped login.\nNo blockers.  "}
	s := NewSummarizer(backend).WithLocation(time.UTC)

	got, err := s.Summarize(context.Background(), SummaryInput{
		Messages:    []StandupMessage{{UserName: "alice", Content: "shipped login", Timestamp: "2024-01-01T09:00:00"}},
		Date:        "2024-01-01",
		ChannelName: "frontend",
	})

	assert.Equal(t, nil, err)
	assert.Equal(t, "  Team shipped login.\nNo blockers.  ", got)
	assert.Equal(t, 1, backend.calls)
}

func TestSummarize_PromptCarriesEveryMessageAndLabel(t *testing.T) {
	backend := &fakeBackend{text: "ok"}
	s := NewSummarizer(backend).WithLocation(time.UTC)

	input := SummaryInput{
		Messages: []StandupMessage{
			{UserName: "alice", Content: "finished the login flow", Timestamp: "2024-01-01T09:00:00"},
			{UserName: "bob", Content: "blocked on staging creds", Timestamp: "2024-01-01T09:30:00", Attachments: 2},
			{UserName: "carol", Content: "100% done with QA", Timestamp: "2024-01-01T10:15:00"},
		},
		Date:        "2024-01-01",
		ChannelName: "backend-standup",
	}

	_, err := s.Summarize(context.Background(), input)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(backend.prompts))

	prompt := backend.prompts[0]
	for _, m := range input.Messages {
		assert.Equal(t, true, strings.Contains(prompt, m.UserName))
		assert.Equal(t, true, strings.Contains(prompt, m.Content))
	}
	assert.Equal(t, true, strings.Contains(prompt, "2024-01-01"))
	assert.Equal(t, true, strings.Contains(prompt, "backend-standup"))
}

func TestSummarize_WrapsBackendError(t *testing.T) {
	backend := &fakeBackend{err: &ServiceError{Provider: "fake", Err: errors.New("quota exceeded")}}
	s := NewSummarizer(backend)

	_, err := s.Summarize(context.Background(), SummaryInput{
		Messages: []StandupMessage{{UserName: "alice", Content: "hi", Timestamp: "2024-01-01T09:00:00"}},
	})

	assert.NotEqual(t, nil, err)
	assert.Equal(t, "Error generating AI summary: fake: quota exceeded", err.Error())

	var serviceErr *ServiceError
	assert.Equal(t, true, errors.As(err, &serviceErr))
	assert.Equal(t, "fake", serviceErr.Provider)
}

func TestUnconfiguredBackend(t *testing.T) {
	_, err := unconfiguredBackend{provider: "gemini"}.Generate(context.Background(), "prompt")

	assert.Equal(t, true, errors.Is(err, ErrMissingAPIKey))
	assert.Equal(t, "gemini: api key is not configured", err.Error())
}
