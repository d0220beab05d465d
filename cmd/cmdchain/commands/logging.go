package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

func configureLogger(writer io.Writer, level string) error {
	parsed, err := parseLogLevel(level)
	if err != nil {
		return err
	}
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: parsed})
	slog.SetDefault(slog.New(handler))
	return nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level: %s", level)
	}
}
