package config

// NotificationConfig defines where aggregated run notifications go.
type NotificationConfig struct {
	// NtfyServer is the base URL of the push endpoint.
	NtfyServer string `json:"ntfy_server,omitempty" yaml:"ntfy_server,omitempty" validate:"omitempty,url"`
	// NtfyTopic is required; the POST target is <server>/<topic>.
	NtfyTopic string `json:"ntfy_topic" yaml:"ntfy_topic" validate:"required"`
	// MaxErrorsReported caps the number of per-target errors listed in the
	// error notification; the remainder is summarized as a count.
	MaxErrorsReported int `json:"max_errors_reported,omitempty" yaml:"max_errors_reported,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultNotificationConfig creates default notification configuration.
func NewDefaultNotificationConfig() NotificationConfig {
	return NotificationConfig{
		NtfyServer:        DefaultNtfyServer,
		MaxErrorsReported: DefaultMaxErrorsReported,
	}
}
