package logger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/huxley-labs/nearkit-cli/pkg/common/iface"
)

// LogEntry represents a single log entry with level and message
type LogEntry struct {
	Level   string
	Message string
}

// NoopLogger implements the Logger interface but doesn't output anything.
// Instead, it buffers all log messages for testing assertions.
// It is safe for concurrent use.
type NoopLogger struct {
	mu      sync.RWMutex
	entries []LogEntry
}

// NewNoopLogger creates a new no-op logger for testing
func NewNoopLogger() *NoopLogger {
	return &NoopLogger{
		entries: make([]LogEntry, 0),
	}
}

func (l *NoopLogger) Title(msg string, args ...any) {
	formatted := fmt.Sprintf("\n"+msg+"\n", args...)
	l.addEntry("TITLE", formatted)
}

func (l *NoopLogger) Info(msg string, args ...any) {
	msg = strings.Trim(msg, "\n")
	if msg == "" {
		return
	}
	l.addEntry("INFO", fmt.Sprintf(msg, args...))
}

func (l *NoopLogger) Warn(msg string, args ...any) {
	msg = strings.Trim(msg, "\n")
	if msg == "" {
		return
	}
	l.addEntry("WARN", fmt.Sprintf(msg, args...))
}

func (l *NoopLogger) Error(msg string, args ...any) {
	msg = strings.Trim(msg, "\n")
	if msg == "" {
		return
	}
	l.addEntry("ERROR", fmt.Sprintf(msg, args...))
}

func (l *NoopLogger) Debug(msg string, args ...any) {
	msg = strings.Trim(msg, "\n")
	if msg == "" {
		return
	}
	l.addEntry("DEBUG", fmt.Sprintf(msg, args...))
}

func (l *NoopLogger) addEntry(level, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Level: level, Message: message})
}

// Entries returns a copy of all buffered log entries
func (l *NoopLogger) Entries() []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// EntriesWithLevel returns buffered entries matching the given level
func (l *NoopLogger) EntriesWithLevel(level string) []LogEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []LogEntry
	for _, e := range l.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// ContainsMessage reports whether any buffered entry contains the given substring
func (l *NoopLogger) ContainsMessage(substr string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

// Reset clears all buffered entries
func (l *NoopLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// NoopProgressTracker implements ProgressTracker without any output.
type NoopProgressTracker struct {
	mu   sync.Mutex
	rows []iface.ProgressRow
}

func NewNoopProgressTracker() *NoopProgressTracker {
	return &NoopProgressTracker{}
}

func (t *NoopProgressTracker) ProgressRows() []iface.ProgressRow {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]iface.ProgressRow, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *NoopProgressTracker) Set(id string, pct int, label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, iface.ProgressRow{Stage: id, Pct: pct, Label: label})
}

func (t *NoopProgressTracker) Render() {}

func (t *NoopProgressTracker) Clear() {}
