package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DefaultPort         = "3001"
	DefaultDBPath       = "../slack/standup_messages.db"
	DefaultProvider     = "gemini"
	DefaultGeminiModel  = "gemini-2.5-flash"
	DefaultOpenAIModel  = "gpt-4o-mini"
	DefaultClaudeModel  = "claude-haiku-4-5"
	DefaultAPIBaseURL   = "http://localhost:3001"
	DefaultDashboardURL = "http://localhost:3000"
	DefaultDashAddr     = ":3000"
	DefaultMockDelay    = time.Second
)

// Config is read from the environment once godotenv has populated it.
type Config struct {
	Port           string
	DBPath         string
	AllowedOrigins []string

	SummaryProvider string
	GeminiAPIKey    string
	GeminiModel     string
	OpenAIAPIKey    string
	OpenAIModel     string
	AnthropicAPIKey string
	AnthropicModel  string

	APIBaseURL    string
	DashboardAddr string
	MockDelay     time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", DefaultPort),
		DBPath:          getEnv("DB_PATH", DefaultDBPath),
		AllowedOrigins:  []string{DefaultDashboardURL},
		SummaryProvider: strings.ToLower(getEnv("SUMMARY_PROVIDER", DefaultProvider)),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getEnv("GEMINI_MODEL", DefaultGeminiModel),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:     getEnv("OPENAI_MODEL", DefaultOpenAIModel),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:  getEnv("ANTHROPIC_MODEL", DefaultClaudeModel),
		APIBaseURL:      strings.TrimRight(getEnv("API_BASE_URL", DefaultAPIBaseURL), "/"),
		DashboardAddr:   getEnv("DASHBOARD_ADDR", DefaultDashAddr),
		MockDelay:       DefaultMockDelay,
	}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, frontendURL)
	}

	if raw := os.Getenv("MOCK_DELAY"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid MOCK_DELAY %q: %w", raw, err)
		}
		cfg.MockDelay = d
	}

	return cfg, nil
}

// Addr is the listen address of the API server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
