// Package logging provides the leveled console logger used by every phase of
// a run, with optional capture to a log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/backmassage/slugren/internal/config"
	"github.com/backmassage/slugren/internal/term"
)

// Logger provides leveled, optionally colored logging with optional file sink.
// All levels go to the same console writer so plan, warnings and results
// read top to bottom in one stream.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	file     *os.File
	filePath string
	now      func() time.Time
}

// NewLogger initializes colors from cfg and writes to stdout. Call Close()
// when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	return New(cfg, os.Stdout)
}

// New is NewLogger with an explicit console writer.
func New(cfg *config.Config, out io.Writer) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	l := &Logger{out: out, now: time.Now}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("logging: create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open log file: %w", err)
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Writer returns the console writer, for callers that print unprefixed text
// such as the confirmation prompt.
func (l *Logger) Writer() io.Writer { return l.out }

func (l *Logger) line(level, style, text string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + term.Strip(text) + "\n"
	if style != "" {
		_, _ = io.WriteString(l.out, ts+" "+term.Paint(style, "["+level+"]")+" "+text+"\n")
	} else {
		_, _ = io.WriteString(l.out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Blank writes an empty separator line to the console only.
func (l *Logger) Blank() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, "\n")
}

// Info logs at INFO level.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", term.InfoTag, fmt.Sprintf(format, args...))
}

// Success logs at SUCCESS level.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", term.SuccessTag, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", term.WarnTag, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", term.ErrorTag, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose; no-op otherwise.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line("DEBUG", term.DebugTag, fmt.Sprintf(format, args...))
}
