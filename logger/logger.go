// Package logger provides the small leveled logger used across perch.
//
// Log lines are plain text so they stay readable next to prompts:
//
//	15:04:05 DEBUG userio: input | op=int ok=false raw=abc
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelSilent:
		return "SILENT"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a config or flag value ("debug", "warn", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "silent", "off", "none":
		return LevelSilent, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger is the logging surface handed to perch components
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithFields(fields ...Field) Logger
	SetLevel(level Level)
}

// Field is a key/value pair appended to a log line
type Field struct {
	Key   string
	Value any
}

// F creates a field
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// levelState is shared between a logger and the children made by WithFields,
// so SetLevel on the root also quiets its children.
type levelState struct {
	mu    sync.Mutex
	level Level
	out   io.Writer
}

type textLogger struct {
	state  *levelState
	fields []Field
	now    func() time.Time
}

// New creates a logger writing lines at or above level to out.
// A nil out writes to stderr, keeping stdout free for prompts.
func New(level Level, out io.Writer) Logger {
	if out == nil {
		out = os.Stderr
	}
	return &textLogger{
		state: &levelState{level: level, out: out},
		now:   time.Now,
	}
}

// NewSilent creates a logger that outputs nothing
func NewSilent() Logger {
	return New(LevelSilent, io.Discard)
}

func (l *textLogger) SetLevel(level Level) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()
	l.state.level = level
}

func (l *textLogger) WithFields(fields ...Field) Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &textLogger{state: l.state, fields: merged, now: l.now}
}

func (l *textLogger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *textLogger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *textLogger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *textLogger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l *textLogger) log(level Level, msg string, fields []Field) {
	l.state.mu.Lock()
	defer l.state.mu.Unlock()

	if level < l.state.level || l.state.level == LevelSilent {
		return
	}

	var b strings.Builder
	b.WriteString(l.now().Format("15:04:05"))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	if len(l.fields)+len(fields) > 0 {
		b.WriteString(" |")
		for _, f := range l.fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
		for _, f := range fields {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.state.out, b.String())
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = NewSilent()
)

// SetDefault replaces the process-wide logger
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Default returns the process-wide logger. It is silent until SetDefault is called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}
