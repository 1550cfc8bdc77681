// Package log provides structured debug logging for tasks.
// Entries go to a file opened through tea.LogToFile so they never mix with
// command output. Logging is off until Init is called.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatCommand Category = "cmd"    // Command dispatch
	CatStore   Category = "store"  // Snapshot load/save
	CatConfig  Category = "config" // Configuration loading
	CatUI      Category = "ui"     // TUI events
)

// Logger writes formatted entries to a writer.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer
}

var (
	mu            sync.Mutex
	defaultLogger *Logger
)

// Init opens path for appending and makes it the log destination.
// Returns a cleanup function to close the log file.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "tasks")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	setDefault(&Logger{writer: f})
	return func() {
		setDefault(nil)
		_ = f.Close()
	}, nil
}

// InitWriter logs to w. Used by tests.
func InitWriter(w io.Writer) func() {
	setDefault(&Logger{writer: w})
	return func() { setDefault(nil) }
}

func setDefault(l *Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

func current() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields...) }
func Info(cat Category, msg string, fields ...any)  { write(LevelInfo, cat, msg, fields...) }
func Warn(cat Category, msg string, fields ...any)  { write(LevelWarn, cat, msg, fields...) }

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.writer == nil {
		return
	}
	_, _ = io.WriteString(l.writer, format(time.Now(), level, cat, msg, fields...))
}

// Format: 2025-12-06T10:45:00 [ERROR] [store] message key=value key2=value2
func format(ts time.Time, level Level, cat Category, msg string, fields ...any) string {
	entry := fmt.Sprintf("%s [%s] [%s] %s", ts.Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	// orphan key with no value
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	return entry + "\n"
}

// Enabled reports whether TASKS_DEBUG asks for logging.
func Enabled() bool {
	v := os.Getenv("TASKS_DEBUG")
	return v != "" && v != "0" && v != "false"
}
