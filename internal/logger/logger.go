package logger

import (
	"io"
	"log"
	"os"
	"sync/atomic"
)

// Logger writes leveled messages. Debug output is suppressed unless the
// logger is verbose.
type Logger struct {
	verbose atomic.Bool
	info    *log.Logger
	warn    *log.Logger
	debug   *log.Logger
	error   *log.Logger
}

var defaultLogger *Logger

func init() {
	defaultLogger = New(false, os.Stderr)
}

// New creates a logger writing to output
func New(verbose bool, output io.Writer) *Logger {
	flags := log.Ldate | log.Ltime
	l := &Logger{
		info:  log.New(output, "[INFO]  ", flags),
		warn:  log.New(output, "[WARN]  ", flags),
		debug: log.New(output, "[DEBUG] ", flags),
		error: log.New(output, "[ERROR] ", flags),
	}
	l.verbose.Store(verbose)
	return l
}

// SetDefault replaces the package-level logger
func SetDefault(l *Logger) {
	defaultLogger = l
}

// Default returns the package-level logger
func Default() *Logger {
	return defaultLogger
}

func (l *Logger) SetVerbose(verbose bool) {
	l.verbose.Store(verbose)
}

func (l *Logger) IsVerbose() bool {
	return l.verbose.Load()
}

// Info logs a message that is always shown
func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Printf(format, args...)
}

// Warn logs a recoverable problem, such as a file skipped during a batch scan
func (l *Logger) Warn(format string, args ...interface{}) {
	l.warn.Printf(format, args...)
}

// Debug logs only in verbose mode
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.verbose.Load() {
		l.debug.Printf(format, args...)
	}
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.error.Printf(format, args...)
}

// Package-level functions that use the default logger

func SetVerbose(verbose bool) {
	defaultLogger.SetVerbose(verbose)
}

func IsVerbose() bool {
	return defaultLogger.IsVerbose()
}

func Info(format string, args ...interface{}) {
	defaultLogger.Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	defaultLogger.Warn(format, args...)
}

func Debug(format string, args ...interface{}) {
	defaultLogger.Debug(format, args...)
}

func Error(format string, args ...interface{}) {
	defaultLogger.Error(format, args...)
}
