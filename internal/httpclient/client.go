// Package httpclient provides the fetch-with-retry collaborator used by
// the monitoring runner.
package httpclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"

	"webwatch/internal/config"
)

// Client wraps net/http.Client with per-request timeout, default headers
// and bounded retries with linearly increasing backoff.
type Client struct {
	httpClient *http.Client
	cfg        config.HTTPClientConfig
	logger     zerolog.Logger
}

// NewClient creates a new fetch client from configuration.
func NewClient(cfg config.HTTPClientConfig, logger zerolog.Logger) *Client {
	componentLogger := logger.With().Str("component", "HTTPClient").Logger()

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		},
	}
	if err := http2.ConfigureTransport(transport); err != nil {
		componentLogger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
	}

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout(),
		},
		cfg:    cfg,
		logger: componentLogger,
	}
}

// FetchText performs a GET request and returns the response body as a
// string. On failure it retries up to MaxRetries times, waiting
// backoff*attempt between attempts, and propagates the last error once
// retries are exhausted.
func (c *Client) FetchText(ctx context.Context, url string, headers map[string]string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.cfg.RetryBackoff() * time.Duration(attempt)
			c.logger.Warn().
				Str("url", url).
				Int("attempt", attempt+1).
				Dur("delay", delay).
				Err(lastErr).
				Msg("Fetch failed, retrying after backoff")
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
		}

		body, err := c.fetch(ctx, url, headers)
		if err == nil {
			return body, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("all %d attempts failed: %w", c.cfg.MaxRetries+1, lastErr)
}

func (c *Client) fetch(ctx context.Context, url string, headers map[string]string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}
	// Per-watch headers override the defaults.
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", NewHTTPError(resp.StatusCode, resp.Status, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
