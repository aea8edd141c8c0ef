package datastore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webwatch/internal/models"
)

func TestStateStore_LoadMissingFileReturnsEmpty(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), "state.json"), zerolog.Nop())

	states, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestStateStore_RoundTrip(t *testing.T) {
	store := NewStateStore(filepath.Join(t.TempDir(), "state.json"), zerolog.Nop())

	found := true
	original := map[string]*models.WatchState{
		"https://example.com/page": {
			Hash:               "abc123",
			Text:               "héllo wörld — 例のページ",
			Timestamp:          1700000000,
			LastAlertTimestamp: 1699990000,
		},
		"https://example.com/keyword": {
			Found:     &found,
			Timestamp: 1700000001,
		},
	}

	require.NoError(t, store.Save(original))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	page := loaded["https://example.com/page"]
	require.NotNil(t, page)
	assert.Equal(t, "abc123", page.Hash)
	assert.Equal(t, "héllo wörld — 例のページ", page.Text)
	assert.Equal(t, int64(1700000000), page.Timestamp)
	assert.Equal(t, int64(1699990000), page.LastAlertTimestamp)
	assert.Nil(t, page.Found)

	kw := loaded["https://example.com/keyword"]
	require.NotNil(t, kw)
	require.NotNil(t, kw.Found)
	assert.True(t, *kw.Found)
	assert.Empty(t, kw.Hash)
	assert.Zero(t, kw.LastAlertTimestamp)
}

func TestStateStore_PrettyPrintedUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStateStore(path, zerolog.Nop())

	states := map[string]*models.WatchState{
		"https://example.com": {Hash: "h", Text: "日本語 & <b>", Timestamp: 1},
	}
	require.NoError(t, store.Save(states))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// Indented, non-ASCII preserved, HTML not escaped.
	assert.Contains(t, string(raw), "\n  ")
	assert.Contains(t, string(raw), "日本語")
	assert.Contains(t, string(raw), "<b>")
	assert.NotContains(t, string(raw), "\\u65e5")
}

func TestStateStore_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	store := NewStateStore(path, zerolog.Nop())

	require.NoError(t, store.Save(map[string]*models.WatchState{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Name(), ".tmp"), "temp file left behind: %s", e.Name())
	}
}

func TestStateStore_SaveOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewStateStore(path, zerolog.Nop())

	require.NoError(t, store.Save(map[string]*models.WatchState{
		"https://a": {Hash: "one", Timestamp: 1},
	}))
	require.NoError(t, store.Save(map[string]*models.WatchState{
		"https://a": {Hash: "two", Timestamp: 2},
	}))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "two", loaded["https://a"].Hash)
}
