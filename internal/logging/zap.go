// Package logging provides the zap backed implementation of ghapi.Logger.
package logging

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity that is written.
type Level int

const (
	// DebugLevel logs everything, including HTTP request and response traces.
	DebugLevel Level = iota
	// InfoLevel is the default.
	InfoLevel
	// WarnLevel logs warnings and errors.
	WarnLevel
	// ErrorLevel logs errors only.
	ErrorLevel
)

// Environment variables read by NewZapLoggerFromEnv.
const (
	EnvLogLevel  = "GHAPI_LOG_LEVEL"
	EnvLogFormat = "GHAPI_LOG_FORMAT"
)

// LevelFromString parses a level name. Unknown names map to InfoLevel.
func LevelFromString(level string) Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l Level) zapLevel() zapcore.Level {
	switch l {
	case DebugLevel:
		return zap.DebugLevel
	case WarnLevel:
		return zap.WarnLevel
	case ErrorLevel:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// ZapLogger adapts zap.Logger to the map based logging interface used by the client.
type ZapLogger struct {
	logger *zap.Logger
}

// New wraps an existing zap logger.
func New(logger *zap.Logger) *ZapLogger {
	return &ZapLogger{logger: logger}
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return New(zap.NewNop())
}

// NewZapLogger creates a logger writing to stderr. development selects the
// human readable console encoder; otherwise entries are JSON.
func NewZapLogger(level Level, development bool) (*ZapLogger, error) {
	var config zap.Config

	if development {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	config.Level = zap.NewAtomicLevelAt(level.zapLevel())
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return New(logger), nil
}

// NewZapLoggerFromEnv creates a logger from GHAPI_LOG_LEVEL and
// GHAPI_LOG_FORMAT ("json" for JSON output). fallback is used when no level
// is set in the environment.
func NewZapLoggerFromEnv(fallback Level) (*ZapLogger, error) {
	level := fallback
	if levelStr := os.Getenv(EnvLogLevel); levelStr != "" {
		level = LevelFromString(levelStr)
	}

	development := os.Getenv(EnvLogFormat) != "json"

	return NewZapLogger(level, development)
}

// Debug logs at debug level.
func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, toZapFields(fields)...)
}

// Info logs at info level.
func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toZapFields(fields)...)
}

// Warn logs at warn level.
func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toZapFields(fields)...)
}

// Error logs at error level.
func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toZapFields(fields)...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	err := l.logger.Sync()
	if err != nil {
		return fmt.Errorf("syncing logger: %w", err)
	}

	return nil
}

// toZapFields converts fields in key order so output is stable.
func toZapFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(keys))
	for _, key := range keys {
		zapFields = append(zapFields, zap.Any(key, fields[key]))
	}

	return zapFields
}
