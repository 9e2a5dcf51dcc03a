package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "mdtree",
	})
	return &Logger{Logger: l}
}

// NewFromConfig creates a logger for a textual level such as "debug".
func NewFromConfig(w io.Writer, level string) (*Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return NewWithLevel(w, lvl), nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// WithRun tags every entry with a fresh run id so the lines of one
// invocation can be grouped.
func (l *Logger) WithRun() *Logger {
	return &Logger{Logger: l.With("run_id", uuid.NewString())}
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, format string) {
	l.Debug("config loaded",
		"path", path,
		"format", format)
}

// ParseStarted logs the start of a parse
func (l *Logger) ParseStarted(source string, size int64) {
	l.Debug("parse started",
		"source", source,
		"bytes", size)
}

// ParseCompleted logs a successful parse
func (l *Logger) ParseCompleted(source string, blocks int, duration time.Duration) {
	l.Info("parse completed",
		"source", source,
		"blocks", blocks,
		"duration", duration.Round(time.Microsecond))
}

// TreeDecoded logs a document read back from a dumped tree
func (l *Logger) TreeDecoded(source, format string, blocks int) {
	l.Info("tree decoded",
		"source", source,
		"format", format,
		"blocks", blocks)
}

// ParseFailed logs a parse error with its position
func (l *Logger) ParseFailed(source string, line, column int, err error) {
	l.Error("parse failed",
		"source", source,
		"line", line,
		"column", column,
		"error", err)
}

// LoadFailed logs a failure to read a source
func (l *Logger) LoadFailed(source string, err error) {
	l.Error("load failed",
		"source", source,
		"error", err)
}

// Rendered logs a finished render
func (l *Logger) Rendered(source, format string, bytes int) {
	l.Debug("rendered",
		"source", source,
		"format", format,
		"bytes", bytes)
}
