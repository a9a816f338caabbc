package config

import (
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DB_PATH", "SUMMARY_PROVIDER", "GEMINI_MODEL", "API_BASE_URL",
		"DASHBOARD_ADDR", "MOCK_DELAY", "FRONTEND_URL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, "../slack/standup_messages.db", cfg.DBPath)
	assert.Equal(t, "gemini", cfg.SummaryProvider)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "http://localhost:3001", cfg.APIBaseURL)
	assert.Equal(t, ":3000", cfg.DashboardAddr)
	assert.Equal(t, time.Second, cfg.MockDelay)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PATH", "/tmp/standup.db")
	t.Setenv("SUMMARY_PROVIDER", "OpenAI")
	t.Setenv("API_BASE_URL", "http://api.internal:9000/")
	t.Setenv("MOCK_DELAY", "250ms")
	t.Setenv("FRONTEND_URL", "https://standup.example.com")

	cfg, err := Load()

	assert.Equal(t, nil, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "/tmp/standup.db", cfg.DBPath)
	assert.Equal(t, "openai", cfg.SummaryProvider)
	assert.Equal(t, "http://api.internal:9000", cfg.APIBaseURL)
	assert.Equal(t, 250*time.Millisecond, cfg.MockDelay)
	assert.Equal(t, []string{"http://localhost:3000", "https://standup.example.com"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidMockDelay(t *testing.T) {
	t.Setenv("MOCK_DELAY", "soon")

	_, err := Load()

	assert.NotEqual(t, nil, err)
}
