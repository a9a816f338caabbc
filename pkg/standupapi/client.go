package standupapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

type Channel struct {
	ChannelID    string `json:"channel_id"`
	ChannelName  string `json:"channel_name"`
	TeamID       string `json:"team_id"`
	MessageCount int    `json:"message_count"`
}

type Message struct {
	UserName    string `json:"user_name"`
	Content     string `json:"content"`
	Timestamp   string `json:"timestamp"`
	Attachments int    `json:"attachments"`
}

type SummaryRequest struct {
	Messages    []Message `json:"messages"`
	Date        string    `json:"date"`
	ChannelName string    `json:"channelName"`
}

var (
	ErrFetchChannels   = errors.New("Failed to fetch channels")
	ErrFetchMessages   = errors.New("Failed to fetch messages")
	ErrGenerateSummary = errors.New("Failed to generate summary")
)

// Client talks to the standup API server. Requests carry no timeout of their
// own; callers bound them through the context.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

func (c *Client) ListChannels(ctx context.Context, date string) ([]Channel, error) {
	endpoint := fmt.Sprintf("%s/api/channels?date=%s", c.baseURL, url.QueryEscape(date))

	var channels []Channel
	if err := c.getJSON(ctx, endpoint, ErrFetchChannels, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (c *Client) ListMessages(ctx context.Context, channelID, date string) ([]Message, error) {
	endpoint := fmt.Sprintf("%s/api/messages/%s?date=%s",
		c.baseURL, url.PathEscape(channelID), url.QueryEscape(date))

	var messages []Message
	if err := c.getJSON(ctx, endpoint, ErrFetchMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// Summarize posts the messages to the summary endpoint. On a non-2xx reply
// the server's error message is returned when it sent one.
func (c *Client) Summarize(ctx context.Context, in SummaryRequest) (string, error) {
	if in.Messages == nil {
		in.Messages = []Message{}
	}
	body, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("standup api encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/summary", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("standup api request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("standup api summary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorResponse
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return "", errors.New(apiErr.Error)
		}
		return "", ErrGenerateSummary
	}

	var out summaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("standup api decode: %w", err)
	}
	return out.Summary, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, failure error, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("standup api request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("standup api fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return failure
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("standup api decode: %w", err)
	}
	return nil
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}
