package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NoMessagesSummary is returned for an empty message list. The backend is
// not called in that case.
const NoMessagesSummary = "No messages found for this date."

// SummaryErrorPrefix starts the message of every failed generation.
const SummaryErrorPrefix = "Error generating AI summary"

type StandupMessage struct {
	UserName    string
	Content     string
	Timestamp   string
	Attachments int
}

type SummaryInput struct {
	Messages    []StandupMessage
	Date        string
	ChannelName string
}

type Summarizer struct {
	backend  SummaryBackend
	location *time.Location
}

func NewSummarizer(backend SummaryBackend) *Summarizer {
	return &Summarizer{backend: backend, location: time.Local}
}

// WithLocation sets the zone message times are rendered in.
func (s *Summarizer) WithLocation(loc *time.Location) *Summarizer {
	s.location = loc
	return s
}

// Summarize returns the backend text verbatim. Nothing is cached or retried.
func (s *Summarizer) Summarize(ctx context.Context, input SummaryInput) (string, error) {
	if len(input.Messages) == 0 {
		return NoMessagesSummary, nil
	}

	prompt := BuildPrompt(input, s.location)

	slog.Info("generating summary",
		"provider", s.backend.Name(),
		"channel", input.ChannelName,
		"date", input.Date,
		"message_count", len(input.Messages),
	)

	text, err := s.backend.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%s: %w", SummaryErrorPrefix, err)
	}

	return text, nil
}
