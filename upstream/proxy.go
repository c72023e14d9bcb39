// Package upstream forwards generation requests to the Gemini API using the
// server-held API key.
package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jrsteele09/sage-gateway/internal/config"
	apperrors "github.com/jrsteele09/sage-gateway/internal/errors"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
)

const apiVersion = "v1beta"

// maxResponseBytes bounds how much of an upstream answer is buffered.
const maxResponseBytes = 32 << 20

// Error is a non-success answer from the upstream API.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return "Gemini API error: " + e.Message
}

// Proxy issues generateContent calls.
type Proxy struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// ProxyOption configures a Proxy.
type ProxyOption func(*Proxy)

// WithHTTPClient replaces the default client built from the configured timeout.
func WithHTTPClient(c *http.Client) ProxyOption {
	return func(p *Proxy) { p.client = c }
}

func NewProxy(cfg config.UpstreamConfig, opts ...ProxyOption) *Proxy {
	p := &Proxy{
		baseURL: strings.TrimRight(cfg.GetUpstreamBaseURL(), "/"),
		apiKey:  cfg.GetUpstreamAPIKey(),
		client:  &http.Client{Timeout: cfg.GetUpstreamTimeout()},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate posts req.Payload to the model's generateContent endpoint and
// returns the upstream JSON body unchanged.
func (p *Proxy) Generate(ctx context.Context, req Request) ([]byte, error) {
	if p.apiKey == "" {
		return nil, apperrors.ErrMisconfiguredUpstreamKey
	}

	model, known := ResolveModel(req.Model)
	if !known {
		log.Warn().Str("model", req.Model).Str("fallback", model).Msg("Generate: unknown model, using default")
	}

	endpoint := fmt.Sprintf("%s/%s/models/%s:generateContent?key=%s", p.baseURL, apiVersion, model, url.QueryEscape(p.apiKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(req.Payload))
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		// The url.Error carries the endpoint, and with it the key.
		return nil, fmt.Errorf("upstream request to %s failed: %w", model, unwrapURLError(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().
			Int("status", resp.StatusCode).
			Str("model", model).
			Str("upstream_message", gjson.GetBytes(body, "error.message").String()).
			Msg("Generate: upstream returned an error")
		return nil, &Error{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("upstream returned invalid JSON from %s", model)
	}
	return body, nil
}

func unwrapURLError(err error) error {
	var urlErr *url.Error
	if apperrors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
