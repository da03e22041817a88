package mocks

import (
	"fmt"
	"sync"

	"github.com/user/mjpegpack/pkg/ports"
)

// LogEntry is one recorded log message.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Message   string
}

// recorder is the entry store shared by a logger and its component loggers.
type recorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

// Logger records messages for test verification.
type Logger struct {
	rec       *recorder
	component string
}

// NewLogger creates a new recording logger.
func NewLogger() *Logger {
	return &Logger{rec: &recorder{}}
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.record(ports.LevelDebug, msg, args...) }
func (l *Logger) Info(msg string, args ...interface{})  { l.record(ports.LevelInfo, msg, args...) }
func (l *Logger) Warn(msg string, args ...interface{})  { l.record(ports.LevelWarn, msg, args...) }
func (l *Logger) Error(msg string, args ...interface{}) { l.record(ports.LevelError, msg, args...) }

// WithComponent returns a logger recording into the same entry list.
func (l *Logger) WithComponent(component string) ports.Logger {
	return &Logger{rec: l.rec, component: component}
}

func (l *Logger) record(level ports.LogLevel, msg string, args ...interface{}) {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	l.rec.entries = append(l.rec.entries, LogEntry{
		Level:     level,
		Component: l.component,
		Message:   fmt.Sprintf(msg, args...),
	})
}

// Entries returns the recorded messages (for test verification).
func (l *Logger) Entries() []LogEntry {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	result := make([]LogEntry, len(l.rec.entries))
	copy(result, l.rec.entries)
	return result
}

var _ ports.Logger = (*Logger)(nil)
