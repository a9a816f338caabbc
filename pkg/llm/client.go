package llm

import (
	"context"
	"errors"
)

// SummaryBackend is an external text-generation service: one prompt in,
// plain text out.
type SummaryBackend interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ServiceError is returned by backends when the provider call fails.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return e.Provider + ": " + e.Err.Error()
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

var (
	ErrEmptyResponse  = errors.New("empty response")
	ErrMissingAPIKey  = errors.New("api key is not configured")
	ErrUnknownBackend = errors.New("unsupported summary provider")
)

// unconfiguredBackend lets the API boot without credentials. Every call
// fails, so summary requests surface the problem instead of the process.
type unconfiguredBackend struct {
	provider string
}

func (b unconfiguredBackend) Name() string {
	return b.provider
}

func (b unconfiguredBackend) Generate(ctx context.Context, prompt string) (string, error) {
	return "", &ServiceError{Provider: b.provider, Err: ErrMissingAPIKey}
}
