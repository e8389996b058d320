// Structured logging for the FOAM toolpath compiler
//
// Provides a flexible logging system with support for:
// - Log levels (DEBUG, INFO, WARN, ERROR)
// - Structured fields (key-value pairs)
// - Text and JSON output formats
// - ANSI colors for terminal output
// - Per-component loggers with prefixes
//
// This file may be distributed under the terms of the GNU GPLv3 license.

package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	// DEBUG level for detailed debugging information
	DEBUG LogLevel = iota

	// INFO level for general informational messages
	INFO

	// WARN level for warning messages
	WARN

	// ERROR level for error messages
	ERROR
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a LogLevel
func ParseLevel(s string) LogLevel {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "INFO":
		return INFO
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// OutputFormat specifies the output format for log messages
type OutputFormat int

const (
	// FormatText outputs human-readable text format
	FormatText OutputFormat = iota
	// FormatJSON outputs machine-readable JSON format
	FormatJSON
)

// Fields is a map of structured logging fields
type Fields map[string]interface{}

// ANSI color codes for terminal output
var ansiColors = map[LogLevel]string{
	DEBUG: "\x1b[36m", // Cyan
	INFO:  "\x1b[32m", // Green
	WARN:  "\x1b[33m", // Yellow
	ERROR: "\x1b[31m", // Red
}

const ansiReset = "\x1b[0m"

// Logger is the main logging interface
type Logger struct {
	mu        sync.Mutex
	prefix    string
	writer    io.Writer
	level     LogLevel
	colorize  bool
	outFormat OutputFormat
	fields    Fields // Persistent fields attached to this logger
}

// New creates a Logger writing to w at the given level.
func New(w io.Writer, level LogLevel) *Logger {
	return &Logger{
		writer: w,
		level:  level,
	}
}

// Component returns a child logger with the given component prefix.
// The child shares the parent's writer, level and format.
func (l *Logger) Component(name string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	child := &Logger{
		prefix:    name,
		writer:    l.writer,
		level:     l.level,
		colorize:  l.colorize,
		outFormat: l.outFormat,
		fields:    make(Fields, len(l.fields)),
	}
	for k, v := range l.fields {
		child.fields[k] = v
	}
	return child
}

// SetLevel changes the minimum level that will be emitted.
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// SetFormat changes the output format.
func (l *Logger) SetFormat(f OutputFormat) {
	l.mu.Lock()
	l.outFormat = f
	l.mu.Unlock()
}

// SetColorize enables or disables ANSI colors in text output.
func (l *Logger) SetColorize(on bool) {
	l.mu.Lock()
	l.colorize = on
	l.mu.Unlock()
}

// WithFields returns a child logger carrying additional persistent fields.
func (l *Logger) WithFields(fields Fields) *Logger {
	child := l.Component(l.prefix)
	for k, v := range fields {
		child.fields[k] = v
	}
	return child
}

// Debugf logs a formatted message at DEBUG level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.output(DEBUG, fmt.Sprintf(format, args...))
}

// Infof logs a formatted message at INFO level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.output(INFO, fmt.Sprintf(format, args...))
}

// Warnf logs a formatted message at WARN level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.output(WARN, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at ERROR level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.output(ERROR, fmt.Sprintf(format, args...))
}

func (l *Logger) output(level LogLevel, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if level < l.level || l.writer == nil {
		return
	}

	now := time.Now()
	if l.outFormat == FormatJSON {
		entry := map[string]interface{}{
			"time":  now.Format(time.RFC3339),
			"level": level.String(),
			"msg":   msg,
		}
		if l.prefix != "" {
			entry["component"] = l.prefix
		}
		for k, v := range l.fields {
			entry[k] = v
		}
		b, err := json.Marshal(entry)
		if err != nil {
			return
		}
		fmt.Fprintln(l.writer, string(b))
		return
	}

	var sb strings.Builder
	sb.WriteString(now.Format("2006-01-02 15:04:05.000"))
	sb.WriteByte(' ')
	if l.colorize {
		sb.WriteString(ansiColors[level])
	}
	sb.WriteString(fmt.Sprintf("%-5s", level.String()))
	if l.colorize {
		sb.WriteString(ansiReset)
	}
	if l.prefix != "" {
		sb.WriteString(" [")
		sb.WriteString(l.prefix)
		sb.WriteByte(']')
	}
	sb.WriteByte(' ')
	sb.WriteString(msg)
	sb.WriteString(formatFields(l.fields))
	fmt.Fprintln(l.writer, sb.String())
}

// formatFields renders fields as " key=value ..." with stable key order.
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf(" %s=%v", k, fields[k]))
	}
	return sb.String()
}

var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide logger, writing to stderr at INFO.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = New(os.Stderr, INFO)
	})
	return defaultLogger
}
