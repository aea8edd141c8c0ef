package notifier

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webwatch/internal/config"
	"webwatch/internal/models"
)

type recordedRequest struct {
	path     string
	title    string
	priority string
	body     string
}

func newCaptureServer(t *testing.T) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var mu sync.Mutex
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		requests = append(requests, recordedRequest{
			path:     r.URL.Path,
			title:    r.Header.Get("Title"),
			priority: r.Header.Get("Priority"),
			body:     string(body),
		})
		mu.Unlock()
	}))
	return srv, &requests
}

func TestNtfyNotifier_PostsToServerTopic(t *testing.T) {
	srv, requests := newCaptureServer(t)
	defer srv.Close()

	cfg := config.NotificationConfig{NtfyServer: srv.URL, NtfyTopic: "webwatch-alerts"}
	nn := NewNtfyNotifier(cfg, zerolog.Nop())

	err := nn.Send(context.Background(), Notification{
		Title:    "Webwatch: 1 change(s)",
		Message:  "body text",
		Priority: PriorityHigh,
	})
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	got := (*requests)[0]
	assert.Equal(t, "/webwatch-alerts", got.path)
	assert.Equal(t, "Webwatch: 1 change(s)", got.title)
	assert.Equal(t, "high", got.priority)
	assert.Equal(t, "body text", got.body)
}

func TestNtfyNotifier_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	nn := NewNtfyNotifier(config.NotificationConfig{NtfyServer: srv.URL, NtfyTopic: "t"}, zerolog.Nop())
	err := nn.Send(context.Background(), Notification{Title: "x", Message: "y", Priority: PriorityLow})
	assert.Error(t, err)
}

type captureSender struct {
	mu   sync.Mutex
	sent []Notification
}

func (c *captureSender) Send(_ context.Context, n Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, n)
	return nil
}

func testWatch(i int) models.Watch {
	return models.Watch{
		Name: fmt.Sprintf("site-%d", i),
		URL:  fmt.Sprintf("https://example.com/%d", i),
	}
}

func TestHelper_ChangeNotificationAggregatesBlocks(t *testing.T) {
	sender := &captureSender{}
	helper := NewNotificationHelper(sender, config.NewDefaultNotificationConfig(), zerolog.Nop())

	helper.SendChangeNotification(context.Background(), []models.TargetChange{
		{Watch: testWatch(1), Message: "-old\n+new"},
		{Watch: testWatch(2), Message: "Keyword 'x' changed: False → True"},
	})

	require.Len(t, sender.sent, 1)
	n := sender.sent[0]
	assert.Equal(t, "Webwatch: 2 change(s)", n.Title)
	assert.Equal(t, PriorityHigh, n.Priority)
	assert.Contains(t, n.Message, "site-1")
	assert.Contains(t, n.Message, "-old\n+new")
	assert.Contains(t, n.Message, "\n\n---\n\n")
	assert.Contains(t, n.Message, "site-2")
}

func TestHelper_EmptyListsAreNoOps(t *testing.T) {
	sender := &captureSender{}
	helper := NewNotificationHelper(sender, config.NewDefaultNotificationConfig(), zerolog.Nop())

	helper.SendChangeNotification(context.Background(), nil)
	helper.SendErrorNotification(context.Background(), nil)

	assert.Empty(t, sender.sent)
}

func TestHelper_ErrorNotificationCapsListedErrors(t *testing.T) {
	sender := &captureSender{}
	helper := NewNotificationHelper(sender, config.NewDefaultNotificationConfig(), zerolog.Nop())

	var targetErrors []models.TargetError
	for i := 0; i < 13; i++ {
		targetErrors = append(targetErrors, models.TargetError{
			Watch:   testWatch(i),
			Message: fmt.Sprintf("error %d", i),
		})
	}
	helper.SendErrorNotification(context.Background(), targetErrors)

	require.Len(t, sender.sent, 1)
	n := sender.sent[0]
	assert.Equal(t, "Webwatch: 13 error(s)", n.Title)
	assert.Equal(t, PriorityLow, n.Priority)
	assert.Contains(t, n.Message, "error 9")
	assert.NotContains(t, n.Message, "error 10")
	assert.Contains(t, n.Message, "(+3 more errors)")
}

func TestHelper_ErrorNotificationNoSuffixWhenUnderCap(t *testing.T) {
	sender := &captureSender{}
	helper := NewNotificationHelper(sender, config.NewDefaultNotificationConfig(), zerolog.Nop())

	helper.SendErrorNotification(context.Background(), []models.TargetError{
		{Watch: testWatch(1), Message: "timeout"},
	})

	require.Len(t, sender.sent, 1)
	assert.NotContains(t, sender.sent[0].Message, "more errors")
}
