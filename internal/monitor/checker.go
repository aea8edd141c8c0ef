// Package monitor contains the change-detection core: the per-target
// checker, the alert cooldown policy and the run orchestrator.
package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"webwatch/internal/config"
	"webwatch/internal/differ"
	"webwatch/internal/models"
)

// Observation is the outcome of checking one target against its prior
// state. State carries the next persisted record for the URL; the runner
// decides whether LastAlertTimestamp advances.
type Observation struct {
	FirstSeen bool
	Changed   bool
	// Message describes the change (diff or keyword flip); set only when
	// Changed.
	Message string
	State   *models.WatchState
}

// Checker decides unchanged / changed / first-seen for a single target.
type Checker struct {
	maxStoredTextChars int
	maxDiffLines       int
	logger             zerolog.Logger
}

// NewChecker creates a checker with the run's limits.
func NewChecker(cfg config.MonitorConfig, logger zerolog.Logger) *Checker {
	return &Checker{
		maxStoredTextChars: cfg.MaxStoredTextChars,
		maxDiffLines:       cfg.MaxDiffLines,
		logger:             logger.With().Str("component", "Checker").Logger(),
	}
}

// Check compares the normalized text against the previous state under the
// watch's mode. A previous state shaped for the other mode counts as no
// baseline: the first run after a mode switch re-baselines. The returned
// state replaces the stored entry wholesale, which keeps exactly one mode's
// fields populated.
func (c *Checker) Check(watch models.Watch, prev *models.WatchState, text string, now time.Time) (Observation, error) {
	switch watch.Mode {
	case models.WatchModeKeyword:
		return c.checkKeyword(watch, prev, text, now)
	default:
		return c.checkHash(watch, prev, text, now), nil
	}
}

func (c *Checker) checkKeyword(watch models.Watch, prev *models.WatchState, text string, now time.Time) (Observation, error) {
	if watch.Keyword == "" {
		return Observation{}, fmt.Errorf("keyword mode requires a keyword")
	}

	found := strings.Contains(text, watch.Keyword)
	next := &models.WatchState{Found: &found, Timestamp: now.Unix()}

	if !prev.HasKeywordBaseline() {
		return Observation{FirstSeen: true, State: next}, nil
	}
	if found != *prev.Found {
		message := fmt.Sprintf("Keyword '%s' changed: %s → %s", watch.Keyword, boolWord(*prev.Found), boolWord(found))
		return Observation{Changed: true, Message: message, State: next}, nil
	}
	return Observation{State: next}, nil
}

func (c *Checker) checkHash(watch models.Watch, prev *models.WatchState, text string, now time.Time) Observation {
	hash := differ.HashText(text)
	next := &models.WatchState{
		Hash: hash,
		// The stored copy is clamped; hashing and diffing always use the
		// full current text.
		Text:      clampText(text, c.maxStoredTextChars),
		Timestamp: now.Unix(),
	}

	if !prev.HasHashBaseline() {
		return Observation{FirstSeen: true, State: next}
	}
	if hash != prev.Hash {
		message := differ.UnifiedDiff(prev.Text, text, c.maxDiffLines)
		return Observation{Changed: true, Message: message, State: next}
	}
	return Observation{State: next}
}

// clampText truncates to at most max characters, never splitting a rune.
func clampText(text string, max int) string {
	if max <= 0 {
		return text
	}
	count := 0
	for i := range text {
		if count == max {
			return text[:i]
		}
		count++
	}
	return text
}

func boolWord(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
