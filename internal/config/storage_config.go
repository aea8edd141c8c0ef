package config

// StorageConfig defines where durable run data lives.
type StorageConfig struct {
	// StateFilePath is the canonical JSON state file, written atomically
	// once per run.
	StateFilePath string `json:"state_file_path,omitempty" yaml:"state_file_path,omitempty"`
	// HistoryEnabled toggles the sqlite run-history log.
	HistoryEnabled bool `json:"history_enabled" yaml:"history_enabled"`
	// HistoryDBPath is the sqlite database recording one row per run.
	HistoryDBPath string `json:"history_db_path,omitempty" yaml:"history_db_path,omitempty"`
}

// NewDefaultStorageConfig creates default storage configuration.
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		StateFilePath: DefaultStateFilePath,
		HistoryDBPath: DefaultHistoryDBPath,
	}
}
