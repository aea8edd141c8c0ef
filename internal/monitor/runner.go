package monitor

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"webwatch/internal/config"
	"webwatch/internal/datastore"
	"webwatch/internal/models"
	"webwatch/internal/normalizer"
	"webwatch/internal/notifier"
)

// Fetcher retrieves the body of a watched URL. Satisfied by
// httpclient.Client.
type Fetcher interface {
	FetchText(ctx context.Context, url string, headers map[string]string) (string, error)
}

// Runner drives one monitoring run: shuffled sequential fetches, change
// detection, alert gating, a single atomic state save, and aggregated
// notifications. Per-target failures are collected, never fatal; only
// state persistence failures abort the run.
type Runner struct {
	cfg           config.MonitorConfig
	watches       []models.Watch
	fetcher       Fetcher
	checker       *Checker
	policy        AlertPolicy
	stateStore    *datastore.StateStore
	history       *datastore.HistoryStore
	notifications *notifier.NotificationHelper
	logger        zerolog.Logger
}

// NewRunner creates a runner over the validated watch list. history may
// be nil when run-history recording is disabled.
func NewRunner(
	cfg config.MonitorConfig,
	watches []models.Watch,
	fetcher Fetcher,
	stateStore *datastore.StateStore,
	history *datastore.HistoryStore,
	notifications *notifier.NotificationHelper,
	logger zerolog.Logger,
) *Runner {
	return &Runner{
		cfg:           cfg,
		watches:       watches,
		fetcher:       fetcher,
		checker:       NewChecker(cfg, logger),
		policy:        NewAlertPolicy(cfg.AlertCooldown()),
		stateStore:    stateStore,
		history:       history,
		notifications: notifications,
		logger:        logger.With().Str("component", "Runner").Logger(),
	}
}

// Run executes one complete monitoring pass. The returned summary lists
// every change and per-target error; the error return is non-nil only for
// orchestration-level failures (state load/save).
func (r *Runner) Run(ctx context.Context) (models.RunSummary, error) {
	startedAt := time.Now()
	summary := models.RunSummary{
		StartedAt:    startedAt,
		TotalTargets: len(r.watches),
	}

	states, err := r.stateStore.Load()
	if err != nil {
		return summary, err
	}

	// Shuffled order so no target is always first in line for rate
	// limits or timing effects.
	shuffled := make([]models.Watch, len(r.watches))
	copy(shuffled, r.watches)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	for i, watch := range shuffled {
		r.processTarget(ctx, watch, states, &summary)

		if i < len(shuffled)-1 && r.cfg.RequestDelay() > 0 {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(r.cfg.RequestDelay()):
			}
		}
	}

	summary.Duration = time.Since(startedAt)

	// One atomic save after all targets; a crash before this point leaves
	// the prior committed state intact and the run re-runnable.
	if err := r.stateStore.Save(states); err != nil {
		return summary, err
	}

	r.notifications.SendChangeNotification(ctx, summary.Changes)
	r.notifications.SendErrorNotification(ctx, summary.Errors)

	if r.history != nil {
		if err := r.history.RecordRun(summary); err != nil {
			r.logger.Warn().Err(err).Msg("Failed to record run history")
		}
	}

	r.logger.Info().
		Int("targets", summary.TotalTargets).
		Int("changes", len(summary.Changes)).
		Int("errors", len(summary.Errors)).
		Dur("duration", summary.Duration).
		Msg("Run completed")
	return summary, nil
}

// processTarget checks one watch and merges the outcome into states and
// the summary. Every failure is recorded as a per-target error so the
// remaining targets still run.
func (r *Runner) processTarget(ctx context.Context, watch models.Watch, states map[string]*models.WatchState, summary *models.RunSummary) {
	targetLogger := r.logger.With().Str("watch", watch.Name).Str("url", watch.URL).Logger()

	body, err := r.fetcher.FetchText(ctx, watch.URL, watch.Headers)
	if err != nil {
		targetLogger.Warn().Err(err).Msg("Fetch failed")
		summary.Errors = append(summary.Errors, models.TargetError{Watch: watch, Message: err.Error()})
		return
	}

	text, err := normalizer.ExtractText(body, watch.Selector)
	if err != nil {
		targetLogger.Warn().Err(err).Msg("Normalization failed")
		summary.Errors = append(summary.Errors, models.TargetError{Watch: watch, Message: err.Error()})
		return
	}

	now := time.Now()
	prev := states[watch.URL]

	obs, err := r.checker.Check(watch, prev, text, now)
	if err != nil {
		targetLogger.Warn().Err(err).Msg("Check failed")
		summary.Errors = append(summary.Errors, models.TargetError{Watch: watch, Message: err.Error()})
		return
	}

	next := obs.State
	if prev != nil {
		next.LastAlertTimestamp = prev.LastAlertTimestamp
	}

	switch {
	case obs.FirstSeen:
		targetLogger.Info().Msg("Baseline recorded")
	case obs.Changed:
		if r.policy.ShouldAlertNow(prev, now) {
			summary.Changes = append(summary.Changes, models.TargetChange{Watch: watch, Message: obs.Message})
			next.LastAlertTimestamp = now.Unix()
			targetLogger.Info().Msg("Change detected")
		} else {
			targetLogger.Info().Msg("Change detected but alert suppressed by cooldown")
		}
	default:
		targetLogger.Debug().Msg("No change")
	}

	states[watch.URL] = next
}
