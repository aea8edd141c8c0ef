package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *GlobalConfig {
	cfg := NewDefaultGlobalConfig()
	cfg.NotificationConfig.NtfyTopic = "webwatch-test"
	cfg.Watches = []WatchConfig{
		{Name: "docs", URL: "https://example.com/docs"},
		{Name: "store", URL: "https://example.com/store", Mode: "keyword", Keyword: "restock"},
	}
	return cfg
}

func TestValidateConfig_ValidConfigPasses(t *testing.T) {
	assert.NoError(t, ValidateConfig(validTestConfig()))
}

func TestValidateConfig_MissingTopic(t *testing.T) {
	cfg := validTestConfig()
	cfg.NotificationConfig.NtfyTopic = ""

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NtfyTopic")
}

func TestValidateConfig_NoWatches(t *testing.T) {
	cfg := validTestConfig()
	cfg.Watches = nil

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_MissingWatchName(t *testing.T) {
	cfg := validTestConfig()
	cfg.Watches[0].Name = ""

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_InvalidURL(t *testing.T) {
	cfg := validTestConfig()
	cfg.Watches[0].URL = "not a url"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_UnknownMode(t *testing.T) {
	cfg := validTestConfig()
	cfg.Watches[0].Mode = "regex"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_KeywordModeWithoutKeyword(t *testing.T) {
	cfg := validTestConfig()
	cfg.Watches[1].Keyword = ""

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keyword")
}

func TestValidateConfig_TooManyWatches(t *testing.T) {
	cfg := validTestConfig()
	cfg.Watches = nil
	for i := 0; i < DefaultMaxWatches+1; i++ {
		cfg.Watches = append(cfg.Watches, WatchConfig{
			Name: fmt.Sprintf("w%d", i),
			URL:  fmt.Sprintf("https://example.com/p/%d", i),
		})
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}

func TestValidateConfig_DuplicateURLs(t *testing.T) {
	cfg := validTestConfig()
	cfg.Watches[1] = WatchConfig{Name: "docs-again", URL: cfg.Watches[0].URL}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docs")
	assert.Contains(t, err.Error(), "docs-again")
}

func TestValidateConfig_BadLogLevel(t *testing.T) {
	cfg := validTestConfig()
	cfg.LogConfig.LogLevel = "verbose"

	assert.Error(t, ValidateConfig(cfg))
}

func TestWatchConfig_ToWatchDefaultsToHashMode(t *testing.T) {
	w := WatchConfig{Name: "docs", URL: "https://example.com"}.ToWatch()
	assert.Equal(t, "hash", string(w.Mode))
}
