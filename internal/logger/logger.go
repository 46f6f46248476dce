// Package logger builds the zerolog logger used by the command-line front
// end. Library packages never log; they return errors.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Env variables read by FromEnv.
const (
	EnvLevel  = "HTRSIZE_LOG_LEVEL"
	EnvFormat = "HTRSIZE_LOG_FORMAT"
)

// Options configures the logger
type Options struct {
	Level     string
	Format    string // console or json
	Component string
	Writer    io.Writer
}

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// FromEnv builds Options from HTRSIZE_LOG_LEVEL and HTRSIZE_LOG_FORMAT,
// defaulting to warn level console output
func FromEnv() Options {
	return Options{
		Level:  strings.ToLower(getenv(EnvLevel, "warn")),
		Format: strings.ToLower(getenv(EnvFormat, "console")),
	}
}

// New builds a logger writing to opt.Writer (stderr when nil)
func New(opt Options) *Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	l := ctx.Logger()

	return &l
}

// Named returns a child logger with a component field
func Named(l *Logger, component string) *Logger {
	if component == "" {
		return l
	}
	ll := l.With().Str("component", component).Logger()

	return &ll
}

// ParseLevel supports string-only levels, defaulting to warn
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}
