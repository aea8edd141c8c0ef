package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"webwatch/internal/config"
	"webwatch/internal/datastore"
	"webwatch/internal/httpclient"
	"webwatch/internal/logger"
	"webwatch/internal/models"
	"webwatch/internal/monitor"
	"webwatch/internal/notifier"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Could not load config: %v\n", err)
		return 1
	}

	// Flag overrides take precedence over the config file.
	if flags.StateFile != "" {
		gCfg.StorageConfig.StateFilePath = flags.StateFile
	}
	if flags.Topic != "" {
		gCfg.NotificationConfig.NtfyTopic = flags.Topic
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] Could not initialize logger: %v\n", err)
		return 1
	}

	// Validation failures abort before any network activity and before
	// any state mutation.
	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Error().Err(err).Msg("Configuration validation failed")
		return 1
	}

	watches := make([]models.Watch, 0, len(gCfg.Watches))
	for _, wc := range gCfg.Watches {
		watches = append(watches, wc.ToWatch())
	}

	client := httpclient.NewClient(gCfg.HTTPClientConfig, zLogger)
	ntfy := notifier.NewNtfyNotifier(gCfg.NotificationConfig, zLogger)
	notifications := notifier.NewNotificationHelper(ntfy, gCfg.NotificationConfig, zLogger)
	stateStore := datastore.NewStateStore(gCfg.StorageConfig.StateFilePath, zLogger)

	var history *datastore.HistoryStore
	if gCfg.StorageConfig.HistoryEnabled {
		history, err = datastore.NewHistoryStore(gCfg.StorageConfig.HistoryDBPath, zLogger)
		if err != nil {
			zLogger.Warn().Err(err).Msg("Run history unavailable, continuing without it")
			history = nil
		} else {
			defer history.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := monitor.NewRunner(gCfg.MonitorConfig, watches, client, stateStore, history, notifications, zLogger)

	summary, err := runner.Run(ctx)
	if err != nil {
		zLogger.Error().Err(err).Msg("Run failed")
		return 1
	}

	zLogger.Info().
		Int("targets", summary.TotalTargets).
		Int("changes", len(summary.Changes)).
		Int("errors", len(summary.Errors)).
		Msg("Webwatch finished")
	return 0
}
