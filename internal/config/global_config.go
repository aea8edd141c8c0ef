package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application.
type GlobalConfig struct {
	NotificationConfig NotificationConfig `json:"notification_config,omitempty" yaml:"notification_config,omitempty"`
	MonitorConfig      MonitorConfig      `json:"monitor_config,omitempty" yaml:"monitor_config,omitempty"`
	HTTPClientConfig   HTTPClientConfig   `json:"http_client_config,omitempty" yaml:"http_client_config,omitempty"`
	StorageConfig      StorageConfig      `json:"storage_config,omitempty" yaml:"storage_config,omitempty"`
	LogConfig          LogConfig          `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	Watches            []WatchConfig      `json:"watches,omitempty" yaml:"watches,omitempty" validate:"required,min=1,dive"`
}

// NewDefaultGlobalConfig creates a GlobalConfig with default values for
// every section. Watches have no default; they must come from the file.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		NotificationConfig: NewDefaultNotificationConfig(),
		MonitorConfig:      NewDefaultMonitorConfig(),
		HTTPClientConfig:   NewDefaultHTTPClientConfig(),
		StorageConfig:      NewDefaultStorageConfig(),
		LogConfig:          NewDefaultLogConfig(),
	}
}

// GetConfigPath determines the configuration file path.
// Priority: explicit path argument, WEBWATCH_CONFIG_PATH environment
// variable, then config.yaml / config.json in the working directory.
func GetConfigPath(providedPath string) string {
	if providedPath != "" {
		return providedPath
	}

	if envPath := os.Getenv("WEBWATCH_CONFIG_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	for _, file := range []string{"config.yaml", "config.json"} {
		path := filepath.Join(cwd, file)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LoadGlobalConfig loads configuration from the given path (or a default
// location when empty), layered over defaults. YAML is used unless the
// file extension is .json.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return nil, fmt.Errorf("no config file found (looked for config.yaml/config.json)")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	if strings.EqualFold(filepath.Ext(filePath), ".json") {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config %s: %w", filePath, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config %s: %w", filePath, err)
		}
	}

	return cfg, nil
}
