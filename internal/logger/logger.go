package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"webwatch/internal/config"
)

// New creates the application logger from LogConfig. Console output goes
// to stderr; when a log file is configured it is rotated with lumberjack
// and receives JSON lines regardless of the console format.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}

	writers := []io.Writer{consoleWriter(cfg.LogFormat)}
	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.MaxLogSizeMB,
			MaxBackups: cfg.MaxLogBackups,
			LocalTime:  true,
		})
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger, nil
}

func parseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(s))
}

func consoleWriter(format string) io.Writer {
	if strings.EqualFold(format, "json") {
		return os.Stderr
	}
	return zerolog.ConsoleWriter{Out: os.Stderr}
}
