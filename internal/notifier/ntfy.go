// Package notifier delivers aggregated run notifications to an ntfy
// push topic.
package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"webwatch/internal/config"
)

// Priority is the transport-level notification priority.
type Priority string

const (
	PriorityLow     Priority = "low"
	PriorityDefault Priority = "default"
	PriorityHigh    Priority = "high"
)

// Notification is one message to deliver.
type Notification struct {
	Title    string
	Message  string
	Priority Priority
}

// Sender delivers a notification. Satisfied by NtfyNotifier; tests may
// substitute a fake.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// NtfyNotifier posts notifications to <server>/<topic>, carrying the
// title and priority as request headers.
type NtfyNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewNtfyNotifier creates a notifier for the configured server and topic.
func NewNtfyNotifier(cfg config.NotificationConfig, logger zerolog.Logger) *NtfyNotifier {
	server := cfg.NtfyServer
	if server == "" {
		server = config.DefaultNtfyServer
	}
	return &NtfyNotifier{
		endpoint:   strings.TrimRight(server, "/") + "/" + cfg.NtfyTopic,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		logger:     logger.With().Str("component", "NtfyNotifier").Logger(),
	}
}

// Send posts the notification body with Title and Priority headers.
func (nn *NtfyNotifier) Send(ctx context.Context, n Notification) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, nn.endpoint, strings.NewReader(n.Message))
	if err != nil {
		return err
	}
	req.Header.Set("Title", n.Title)
	req.Header.Set("Priority", string(n.Priority))

	resp, err := nn.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("ntfy returned %s", resp.Status)
	}
	return nil
}
