package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var zlog = zerolog.New(os.Stdout).With().Timestamp().Logger()

// InitStructured initializes the structured zerolog logger for a service.
func InitStructured(env, service string) {
	Init(os.Stdout, env, service)
}

// Init is InitStructured with an explicit writer. cmd/kudos logs to stderr
// so command output on stdout stays clean.
func Init(out io.Writer, env, service string) {
	var w io.Writer

	if env == "" || env == "local" || env == "development" || env == "dev" {
		// Pretty console output for development
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	} else {
		// JSON output for production (machine-readable)
		w = out
	}

	zlog = zerolog.New(w).With().
		Timestamp().
		Str("service", service).
		Logger()

	zerolog.TimeFieldFormat = time.RFC3339
}

// SetLevel parses a zerolog level name and applies it globally.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// GetLogger returns the global zerolog logger
func GetLogger() *zerolog.Logger {
	return &zlog
}

// WithRequestID returns a logger with request_id field
func WithRequestID(requestID string) zerolog.Logger {
	return zlog.With().Str("request_id", requestID).Logger()
}

// WithComponent returns a logger tagged with the client-core component name.
func WithComponent(name string) zerolog.Logger {
	return zlog.With().Str("component", name).Logger()
}
