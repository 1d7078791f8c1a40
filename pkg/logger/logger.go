package logger

import (
	"log/slog"
	"os"
)

// Setup initializes the global logger. All binaries call this first so that
// library diagnostics share one handler.
func Setup(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// Fatal logs an error message and then exits the application.
// slog doesn't have a Fatal method by default.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	os.Exit(1)
}

// CronLogger adapts slog to the cron.Logger interface
type CronLogger struct {
	Logger *slog.Logger
}

func (l *CronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, keysAndValues...)
}

func (l *CronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, append(keysAndValues, "error", err)...)
}
