package config

import "time"

const (
	geminiAPIKeyVar = "GEMINI_API_KEY"

	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
)

type UpstreamConfig interface {
	GetUpstreamAPIKey() string
	GetUpstreamBaseURL() string
	GetUpstreamTimeout() time.Duration
}

type Upstream struct {
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	GeminiBaseURL string        `env:"GEMINI_BASE_URL"`
	Timeout       time.Duration `env:"UPSTREAM_TIMEOUT"`
}

var _ UpstreamConfig = Upstream{}

func (u Upstream) GetUpstreamAPIKey() string {
	return u.GeminiAPIKey
}

func (u Upstream) GetUpstreamBaseURL() string {
	return valueOr(u.GeminiBaseURL, DefaultGeminiBaseURL)
}

func (u Upstream) GetUpstreamTimeout() time.Duration {
	if u.Timeout <= 0 {
		return 60 * time.Second
	}
	return u.Timeout
}
