package config

import "time"

// HTTPClientConfig defines configuration for the fetch client.
type HTTPClientConfig struct {
	TimeoutSecs int `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
	// MaxRetries is the number of retry attempts after the initial request.
	MaxRetries int `json:"max_retries,omitempty" yaml:"max_retries,omitempty" validate:"omitempty,min=0,max=10"`
	// RetryBackoffSecs is the base of the linearly increasing backoff:
	// the n-th retry waits backoff*n seconds.
	RetryBackoffSecs   int    `json:"retry_backoff_secs,omitempty" yaml:"retry_backoff_secs,omitempty" validate:"omitempty,min=0"`
	UserAgent          string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	InsecureSkipVerify bool   `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
}

// NewDefaultHTTPClientConfig creates default HTTP client configuration.
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSecs:      DefaultHTTPTimeoutSecs,
		MaxRetries:       DefaultHTTPMaxRetries,
		RetryBackoffSecs: DefaultRetryBackoffSecs,
		UserAgent:        DefaultHTTPUserAgent,
	}
}

// Timeout returns the per-request timeout as a Duration.
func (c HTTPClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

// RetryBackoff returns the backoff base as a Duration.
func (c HTTPClientConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffSecs) * time.Second
}
