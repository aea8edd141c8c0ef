package config

import "time"

// MonitorConfig holds the tunables that govern a monitoring run. They are
// passed into the runner at construction so tests can use small limits.
type MonitorConfig struct {
	// MaxWatches is an operational safety limit on configured targets.
	MaxWatches int `json:"max_watches,omitempty" yaml:"max_watches,omitempty" validate:"omitempty,min=1"`
	// AlertCooldownSecs is the minimum time between two alerts for the
	// same target. Zero means always alert.
	AlertCooldownSecs int `json:"alert_cooldown_secs,omitempty" yaml:"alert_cooldown_secs,omitempty" validate:"omitempty,min=0"`
	// DelayBetweenRequestsMs paces outbound requests between targets.
	DelayBetweenRequestsMs int `json:"delay_between_requests_ms,omitempty" yaml:"delay_between_requests_ms,omitempty" validate:"omitempty,min=0"`
	// MaxDiffLines bounds the size of a change notification.
	MaxDiffLines int `json:"max_diff_lines,omitempty" yaml:"max_diff_lines,omitempty" validate:"omitempty,min=3"`
	// MaxStoredTextChars clamps the text copy kept in the state file.
	MaxStoredTextChars int `json:"max_stored_text_chars,omitempty" yaml:"max_stored_text_chars,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultMonitorConfig creates default monitor configuration.
func NewDefaultMonitorConfig() MonitorConfig {
	return MonitorConfig{
		MaxWatches:             DefaultMaxWatches,
		AlertCooldownSecs:      DefaultAlertCooldownSecs,
		DelayBetweenRequestsMs: DefaultDelayBetweenRequestsMs,
		MaxDiffLines:           DefaultMaxDiffLines,
		MaxStoredTextChars:     DefaultMaxStoredTextChars,
	}
}

// RequestDelay returns the configured inter-request delay as a Duration.
func (c MonitorConfig) RequestDelay() time.Duration {
	return time.Duration(c.DelayBetweenRequestsMs) * time.Millisecond
}

// AlertCooldown returns the configured cooldown as a Duration.
func (c MonitorConfig) AlertCooldown() time.Duration {
	return time.Duration(c.AlertCooldownSecs) * time.Second
}
