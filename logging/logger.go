// Package logging provides the run log shared by the launchers.
//
// The launchers are built as GUI-subsystem binaries and have no console, so
// the log file in the temp directory is where a failed launch can be
// diagnosed. Every line is also kept in memory for tests and error dialogs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Logger writes timestamped lines to an optional file and an in-memory buffer.
// It is safe for concurrent use, and all methods are no-ops on a nil *Logger.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	closer   io.Closer
	path     string
	messages []string
}

// maxFileSize caps the shared log file; a larger file is truncated on open.
var maxFileSize int64 = 1 << 20

// New returns a Logger that appends to {TEMP}\{prefix}.log.
//
// A single file per prefix is reused across runs and started over once it
// exceeds 1 MiB. If the file cannot be opened the returned Logger only
// buffers in memory together with the open error, so callers may ignore the
// error and still log.
//
// Example:
//
//	log, _ := logging.New("expand-iso")
//	defer log.Close()
//	log.Info("image %s", path)
func New(prefix string) (*Logger, error) {
	logPath := filepath.Join(os.TempDir(), prefix+".log")

	flags := os.O_APPEND | os.O_CREATE | os.O_WRONLY
	if fi, err := os.Stat(logPath); err == nil && fi.Size() > maxFileSize {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		return NewMemory(), fmt.Errorf("open log file: %w", err)
	}

	l := &Logger{
		out:      f,
		closer:   f,
		path:     logPath,
		messages: make([]string, 0, 16),
	}
	l.Info("=== %s started (pid %d) ===", prefix, os.Getpid())
	return l, nil
}

// NewWriter returns a Logger that writes lines to w.
func NewWriter(w io.Writer) *Logger {
	return &Logger{out: w, messages: make([]string, 0, 16)}
}

// NewMemory returns a Logger that only keeps lines in memory.
func NewMemory() *Logger {
	return &Logger{messages: make([]string, 0, 16)}
}

// Close closes the log file, if any.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer != nil {
		l.closer.Close()
		l.closer = nil
		l.out = nil
	}
}

// Path returns the path to the log file, or "" when not file-backed.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Content returns every logged line joined by newlines.
func (l *Logger) Content() string {
	if l == nil {
		return ""
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return strings.Join(l.messages, "\n")
}

// Lines returns a copy of the buffered lines.
func (l *Logger) Lines() []string {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.messages...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log("INFO", format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log("WARN", format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...any) {
	l.log("ERROR", format, args...)
}

func (l *Logger) log(level, format string, args ...any) {
	if l == nil {
		return
	}
	line := formatLine(time.Now(), level, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()

	l.messages = append(l.messages, line)
	if l.out == nil {
		return
	}
	io.WriteString(l.out, line+"\n")
	if s, ok := l.out.(interface{ Sync() error }); ok {
		s.Sync()
	}
}

// formatLine renders "[15:04:05.000] LEVEL: msg".
func formatLine(t time.Time, level, msg string) string {
	return "[" + t.Format("15:04:05.000") + "] " + level + ": " + msg
}
