package redismodels

import (
	"log/slog"
	"os"
	"strings"
)

// LogLevelEnvVar names the environment variable read by ConfigureLogging.
const LogLevelEnvVar = "REDISMODELS_LOG_LEVEL"

var logLevel = new(slog.LevelVar)

// ConfigureLogging sets up the global default logger with a TextHandler
// and configures the log level based on the REDISMODELS_LOG_LEVEL environment variable.
// It defaults to Info level if not specified.
//
// Libraries in this module only log through slog's default logger; the application
// decides whether to call this at startup.
func ConfigureLogging() {
	logLevel.Set(ParseLogLevel(os.Getenv(LogLevelEnvVar)))

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// ParseLogLevel maps DEBUG, INFO, WARN and ERROR (any case) to a slog level, defaulting to Info.
func ParseLogLevel(lvl string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(lvl)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// SetLogLevel sets the logging level for the logger configured by ConfigureLogging.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
