package util

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

// InitLogger sets up the process-wide JSON logger. LOG_LEVEL=debug turns on
// debug output; everything else stays at info.
func InitLogger() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Logger = slog.New(handler).With(slog.String("service", "marketcal"))
	slog.SetDefault(Logger)
}

func GetLogger() *slog.Logger {
	if Logger == nil {
		InitLogger()
	}
	return Logger
}
