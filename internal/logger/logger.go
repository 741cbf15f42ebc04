// Package logger provides the server's structured logger.
//
// Output goes to a caller-supplied writer, normally stderr: stdout is reserved
// for MCP protocol messages.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LevelEnv is the environment variable read by FromEnv.
const LevelEnv = "SEAM_MCP_LOG_LEVEL"

// Logger writes component-tagged structured events.
type Logger struct {
	logger zerolog.Logger
}

// New creates a JSON logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{
		logger: zerolog.New(w).Level(level).With().Timestamp().Logger(),
	}
}

// NewConsole creates a human-readable logger writing to w.
func NewConsole(w io.Writer, level zerolog.Level) *Logger {
	return New(zerolog.ConsoleWriter{Out: w, NoColor: true}, level)
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{logger: zerolog.Nop()}
}

// FromEnv builds a console logger on stderr using the level in
// SEAM_MCP_LOG_LEVEL, or fallback when the variable is unset.
func FromEnv(fallback string) *Logger {
	level := os.Getenv(LevelEnv)
	if level == "" {
		level = fallback
	}
	return NewConsole(os.Stderr, ParseLevel(level))
}

// ParseLevel maps "debug", "info", "warn" and "error" to zerolog levels.
// Anything else means info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Enabled reports whether events at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l.logger.GetLevel() <= level && level != zerolog.NoLevel
}

func (l *Logger) Debug(component, message string, fields map[string]interface{}) {
	withFields(l.logger.Debug().Str("component", component), fields).Msg(message)
}

func (l *Logger) Info(component, message string, fields map[string]interface{}) {
	withFields(l.logger.Info().Str("component", component), fields).Msg(message)
}

func (l *Logger) Warning(component, message string, fields map[string]interface{}) {
	withFields(l.logger.Warn().Str("component", component), fields).Msg(message)
}

func (l *Logger) Error(component, message string, err error, fields map[string]interface{}) {
	withFields(l.logger.Error().Str("component", component).Err(err), fields).Msg(message)
}

func withFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}
