package monitor

import (
	"time"

	"webwatch/internal/models"
)

// AlertPolicy gates how often a changed target may notify. It applies
// only to changed transitions, never to first-seen baselining. A
// suppressed alert still advances the stored hash/found/ts fields; only
// the notification and the last-alert timestamp are skipped, so the
// latest true state is always tracked.
type AlertPolicy struct {
	cooldown time.Duration
}

// NewAlertPolicy creates a policy with the given cooldown. Zero means
// every change alerts.
func NewAlertPolicy(cooldown time.Duration) AlertPolicy {
	return AlertPolicy{cooldown: cooldown}
}

// ShouldAlertNow reports whether a change detected at now is eligible for
// notification. True when no alert has ever fired for the target, or when
// the cooldown has elapsed since the last one.
func (p AlertPolicy) ShouldAlertNow(prev *models.WatchState, now time.Time) bool {
	if prev == nil || prev.LastAlertTimestamp == 0 {
		return true
	}
	return now.Unix()-prev.LastAlertTimestamp >= int64(p.cooldown/time.Second)
}
