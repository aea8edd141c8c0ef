// Package datastore persists per-URL watch state and the run history.
package datastore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"webwatch/internal/models"
)

// StateStore reads and writes the JSON state file mapping URL to
// WatchState. Saves are atomic: the full mapping is written to a
// temporary file which then replaces the canonical path, so a crash
// mid-write never corrupts the previously committed state.
type StateStore struct {
	path   string
	logger zerolog.Logger
}

// NewStateStore creates a store for the given state file path.
func NewStateStore(path string, logger zerolog.Logger) *StateStore {
	return &StateStore{
		path:   path,
		logger: logger.With().Str("component", "StateStore").Logger(),
	}
}

// Load returns the persisted state mapping. A missing state file is not
// an error; it yields an empty mapping (first run).
func (ss *StateStore) Load() (map[string]*models.WatchState, error) {
	data, err := os.ReadFile(ss.path)
	if err != nil {
		if os.IsNotExist(err) {
			ss.logger.Debug().Str("path", ss.path).Msg("No prior state file, starting empty")
			return map[string]*models.WatchState{}, nil
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", ss.path, err)
	}

	states := map[string]*models.WatchState{}
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", ss.path, err)
	}
	return states, nil
}

// Save writes the full state mapping atomically. The output is
// pretty-printed UTF-8 with non-ASCII preserved.
func (ss *StateStore) Save(states map[string]*models.WatchState) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(states); err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if dir := filepath.Dir(ss.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create state directory %s: %w", dir, err)
		}
	}

	tmpPath := ss.path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write temporary state file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, ss.path); err != nil {
		return fmt.Errorf("failed to replace state file %s: %w", ss.path, err)
	}

	ss.logger.Debug().Str("path", ss.path).Int("entries", len(states)).Msg("State saved")
	return nil
}
