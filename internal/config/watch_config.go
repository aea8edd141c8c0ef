package config

import "webwatch/internal/models"

// WatchConfig is the on-disk shape of one monitored target. Unknown or
// missing required fields fail validation instead of silently defaulting.
type WatchConfig struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	URL  string `json:"url" yaml:"url" validate:"required,url"`
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,watchmode"`
	// Keyword is required when mode is "keyword".
	Keyword string `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	// Selector optionally scopes normalization to the first matching
	// element (CSS selector). A non-matching selector falls back to the
	// whole document.
	Selector string            `json:"selector,omitempty" yaml:"selector,omitempty"`
	Headers  map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// ToWatch converts the validated config entry into the runtime watch value.
// Mode defaults to hash when unset.
func (wc WatchConfig) ToWatch() models.Watch {
	mode := models.WatchMode(wc.Mode)
	if mode == "" {
		mode = models.WatchModeHash
	}
	return models.Watch{
		Name:     wc.Name,
		URL:      wc.URL,
		Mode:     mode,
		Keyword:  wc.Keyword,
		Selector: wc.Selector,
		Headers:  wc.Headers,
	}
}
