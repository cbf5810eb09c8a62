// Package logging writes timestamped run logs to the console and mirrors
// them into a log file sited next to the executable.
package logging

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFileName is the name of the per-run log file.
const LogFileName = "mod_classifier.log"

// Logger emits lines of the form "[YYYY-MM-DD HH:MM:SS] <level>: <message>"
// in local time. Info lines go to the out writer, error lines to the errOut
// writer, and both are appended to the log file when one is open. The file
// is flushed after every line so a crash loses at most the line in flight.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	file   *os.File
	writer *bufio.Writer
}

// New creates a Logger writing to the given console writers and, when
// logPath is non-empty, to a log file truncated at that path. A log file
// that cannot be opened is not fatal: the Logger still works console-only
// and the open error is returned for the caller to report.
func New(out, errOut io.Writer, logPath string) (*Logger, error) {
	l := &Logger{out: out, errOut: errOut}

	if logPath == "" {
		return l, nil
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return l, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}
	l.file = file
	l.writer = bufio.NewWriter(file)
	return l, nil
}

// DefaultLogPath returns the log file path next to the executable, falling
// back to the current directory when the executable path is unknown.
func DefaultLogPath() string {
	exe, err := os.Executable()
	if err != nil {
		return LogFileName
	}
	return filepath.Join(filepath.Dir(exe), LogFileName)
}

// Info logs an informational line.
func (l *Logger) Info(format string, args ...interface{}) {
	l.log(l.out, "info", format, args...)
}

// Error logs an error line.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log(l.errOut, "error", format, args...)
}

func (l *Logger) log(console io.Writer, level, format string, args ...interface{}) {
	line := fmt.Sprintf("%s %s: %s\n", timestamp(), level, fmt.Sprintf(format, args...))

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprint(console, line)

	if l.writer != nil {
		l.writer.WriteString(line)
		l.writer.Flush()
	}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	if err := l.writer.Flush(); err != nil {
		l.file.Close()
		return fmt.Errorf("failed to flush log file: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	l.file = nil
	l.writer = nil
	return nil
}

func timestamp() string {
	return time.Now().Format("[2006-01-02 15:04:05]")
}
