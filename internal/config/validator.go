package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"webwatch/internal/models"
)

// ValidateConfig performs validation on the GlobalConfig structure. Any
// violation aborts the run before network activity, so everything that can
// fail closed does so here.
func ValidateConfig(cfg *GlobalConfig) error {
	validate := validator.New()

	_ = validate.RegisterValidation("watchmode", func(fl validator.FieldLevel) bool {
		switch models.WatchMode(fl.Field().String()) {
		case "", models.WatchModeHash, models.WatchModeKeyword:
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "debug", "info", "warn", "error", "fatal":
			return true
		default:
			return false
		}
	})

	_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "", "console", "json":
			return true
		default:
			return false
		}
	})

	if err := validate.Struct(cfg); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) {
			var messages []string
			for _, e := range errs {
				msg := fmt.Sprintf("validation failed for '%s': rule '%s'", e.StructNamespace(), e.Tag())
				if e.Param() != "" {
					msg += fmt.Sprintf(" (expected: %s)", e.Param())
				}
				messages = append(messages, msg)
			}
			return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(messages, "\n  "))
		}
		return fmt.Errorf("configuration validation error: %w", err)
	}

	return validateWatches(cfg)
}

// validateWatches applies the semantic rules the struct tags cannot
// express: the watch-count safety limit, keyword presence for keyword
// mode, and uniqueness of URLs (duplicates would share one state entry
// and corrupt each other's baselines).
func validateWatches(cfg *GlobalConfig) error {
	maxWatches := cfg.MonitorConfig.MaxWatches
	if maxWatches <= 0 {
		maxWatches = DefaultMaxWatches
	}
	if len(cfg.Watches) > maxWatches {
		return fmt.Errorf("config has %d watches; the limit is %d", len(cfg.Watches), maxWatches)
	}

	seen := make(map[string]string, len(cfg.Watches))
	for _, w := range cfg.Watches {
		if models.WatchMode(w.Mode) == models.WatchModeKeyword && w.Keyword == "" {
			return fmt.Errorf("watch %q: keyword mode requires a keyword", w.Name)
		}
		if prev, dup := seen[w.URL]; dup {
			return fmt.Errorf("watches %q and %q share URL %s; URLs must be unique", prev, w.Name, w.URL)
		}
		seen[w.URL] = w.Name
	}
	return nil
}
