package logger

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// GetLogger returns the global logger instance. Until New runs with the
// loaded configuration, it falls back to LOG_LEVEL and LOG_FORMAT from the
// environment so early startup logs are already shaped correctly.
func GetLogger() zerolog.Logger {
	once.Do(func() {
		level := os.Getenv("LOG_LEVEL")
		if level == "" {
			level = "info"
		}
		format := os.Getenv("LOG_FORMAT")
		if format == "" {
			format = "console"
		}
		if _, err := New(level, format, "fixster-api"); err != nil {
			globalLogger = newWriter("console").Level(zerolog.InfoLevel)
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	})
	return globalLogger
}

// New constructs a zerolog logger based on level and format configuration
// and installs it as the global logger.
func New(level, format, service string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Logger{}, err
	}

	switch strings.ToLower(format) {
	case "json", "console":
	default:
		return zerolog.Logger{}, errors.New("unsupported log format")
	}

	writer := newWriter(strings.ToLower(format))
	if service != "" {
		writer = writer.With().Str("service", service).Logger()
	}

	zerolog.SetGlobalLevel(lvl)

	// Update global logger
	globalLogger = writer.Level(lvl)

	return globalLogger, nil
}

func newWriter(format string) zerolog.Logger {
	if format == "json" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(consoleWriter).With().Timestamp().Logger()
}
