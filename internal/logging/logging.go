// Package logging provides the run log: every entry is appended to the log
// file in the target directory and mirrored to the console.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sfbackup/cleancsvs/internal/config"
)

// Level prefixes written to the log file.
const (
	prefixInfo = "INFO: "
	prefixWarn = "WARN: "
)

// Logger writes entries to a file sink and a console sink.
type Logger struct {
	file    io.WriteCloser
	info    *log.Logger
	warn    *log.Logger
	console io.Writer

	// WarnFormat styles the console copy of a warning. Defaults to
	// "warning: <msg>".
	WarnFormat func(msg string) string
}

// New builds a Logger over arbitrary sinks. The file sink gets a timestamp
// and level prefix on every line; the console gets the bare message.
func New(file io.Writer, console io.Writer) *Logger {
	l := &Logger{
		info:    log.New(file, prefixInfo, log.Ldate|log.Ltime|log.Lmsgprefix),
		warn:    log.New(file, prefixWarn, log.Ldate|log.Ltime|log.Lmsgprefix),
		console: console,
	}
	if c, ok := file.(io.WriteCloser); ok {
		l.file = c
	}
	return l
}

// Open appends to the log file in dir, creating it if needed.
func Open(dir string, console io.Writer) (*Logger, error) {
	f, err := os.OpenFile(config.LogFile(dir), os.O_CREATE|os.O_WRONLY|os.O_APPEND, config.LogFileMode)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return New(f, console), nil
}

// Infof records an informational entry.
func (l *Logger) Infof(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.info.Println(msg)
	fmt.Fprintln(l.console, msg)
}

// Warnf records a warning. Warnings never stop a run.
func (l *Logger) Warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.warn.Println(msg)

	if l.WarnFormat != nil {
		fmt.Fprintln(l.console, l.WarnFormat(msg))
		return
	}
	fmt.Fprintln(l.console, "warning: "+msg)
}

// Close closes the file sink if it is closable.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
