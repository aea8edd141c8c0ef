package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"webwatch/internal/config"
	"webwatch/internal/models"
)

// NotificationHelper formats and sends the aggregated change and error
// notifications for one run. Delivery is fire-and-forget: failures are
// logged, never returned to the runner.
type NotificationHelper struct {
	sender    Sender
	maxErrors int
	logger    zerolog.Logger
}

// NewNotificationHelper creates a new NotificationHelper.
func NewNotificationHelper(sender Sender, cfg config.NotificationConfig, logger zerolog.Logger) *NotificationHelper {
	maxErrors := cfg.MaxErrorsReported
	if maxErrors <= 0 {
		maxErrors = config.DefaultMaxErrorsReported
	}
	return &NotificationHelper{
		sender:    sender,
		maxErrors: maxErrors,
		logger:    logger.With().Str("component", "NotificationHelper").Logger(),
	}
}

// SendChangeNotification sends one high-priority message summarizing all
// detected changes. No-op when the list is empty.
func (nh *NotificationHelper) SendChangeNotification(ctx context.Context, changes []models.TargetChange) {
	if len(changes) == 0 {
		return
	}

	blocks := make([]string, 0, len(changes))
	for _, c := range changes {
		blocks = append(blocks, fmt.Sprintf("%s\n%s\n%s", c.Watch.Name, c.Watch.URL, c.Message))
	}

	n := Notification{
		Title:    fmt.Sprintf("Webwatch: %d change(s)", len(changes)),
		Message:  strings.Join(blocks, "\n\n---\n\n"),
		Priority: PriorityHigh,
	}
	if err := nh.sender.Send(ctx, n); err != nil {
		nh.logger.Error().Err(err).Int("changes", len(changes)).Msg("Failed to send change notification")
		return
	}
	nh.logger.Info().Int("changes", len(changes)).Msg("Change notification sent")
}

// SendErrorNotification sends one low-priority message listing per-target
// errors, capped at the configured maximum with a count suffix for the
// remainder. No-op when the list is empty.
func (nh *NotificationHelper) SendErrorNotification(ctx context.Context, targetErrors []models.TargetError) {
	if len(targetErrors) == 0 {
		return
	}

	listed := targetErrors
	if len(listed) > nh.maxErrors {
		listed = listed[:nh.maxErrors]
	}

	lines := make([]string, 0, len(listed))
	for _, te := range listed {
		lines = append(lines, fmt.Sprintf("- %s\n  %s\n  %s", te.Watch.Name, te.Watch.URL, te.Message))
	}
	message := strings.Join(lines, "\n")
	if extra := len(targetErrors) - len(listed); extra > 0 {
		message += fmt.Sprintf("\n(+%d more errors)", extra)
	}

	n := Notification{
		Title:    fmt.Sprintf("Webwatch: %d error(s)", len(targetErrors)),
		Message:  message,
		Priority: PriorityLow,
	}
	if err := nh.sender.Send(ctx, n); err != nil {
		nh.logger.Error().Err(err).Int("errors", len(targetErrors)).Msg("Failed to send error notification")
		return
	}
	nh.logger.Info().Int("errors", len(targetErrors)).Msg("Error notification sent")
}
