package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
)

// ANSI color codes for terminal output
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// LogLevel represents logging verbosity
type LogLevel int

const (
	LogLevelError LogLevel = iota // Always shown
	LogLevelWarn                  // Always shown
	LogLevelInfo                  // Normal mode
	LogLevelDebug                 // Verbose mode only
)

// Logger provides leveled logging with color support
type Logger struct {
	level     LogLevel
	useColors bool
	errorLog  *log.Logger
	infoLog   *log.Logger
}

// NewLogger creates a logger with specified level
func NewLogger(verbose bool) *Logger {
	level := LogLevelInfo
	if verbose {
		level = LogLevelDebug
	}

	return &Logger{
		level:     level,
		useColors: isTerminal(),
		errorLog:  log.New(os.Stderr, "", 0),
		infoLog:   log.New(os.Stdout, "", 0),
	}
}

// SetOutput sets the output for all loggers
func (l *Logger) SetOutput(w io.Writer) {
	l.errorLog.SetOutput(w)
	l.infoLog.SetOutput(w)
}

// colorize applies color formatting if colors are enabled
func (l *Logger) colorize(color, text string) string {
	if !l.useColors {
		return text
	}
	return color + text + colorReset
}

// Info logs informational messages (always visible in normal mode)
func (l *Logger) Info(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		l.infoLog.Println(fmt.Sprintf(format, args...))
	}
}

// InfoSuccess logs success with green checkmark
func (l *Logger) InfoSuccess(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		icon := l.colorize(colorGreen, "✓")
		l.infoLog.Printf("%s %s", icon, fmt.Sprintf(format, args...))
	}
}

// Warn logs warnings (always visible)
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.level >= LogLevelWarn {
		icon := l.colorize(colorYellow, "⚠")
		l.infoLog.Printf("%s %s", icon, fmt.Sprintf(format, args...))
	}
}

// Error logs errors (always visible)
func (l *Logger) Error(format string, args ...interface{}) {
	if l.level >= LogLevelError {
		icon := l.colorize(colorRed, "✗")
		l.errorLog.Printf("%s %s", icon, fmt.Sprintf(format, args...))
	}
}

// Debug logs debug information (verbose mode only)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		l.infoLog.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
	}
}

// DebugHTTP logs HTTP requests and responses (verbose mode only)
func (l *Logger) DebugHTTP(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		l.infoLog.Printf("[HTTP] %s", fmt.Sprintf(format, args...))
	}
}

// Stage logs a high-level stage (e.g., "Classifying...")
func (l *Logger) Stage(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		l.infoLog.Println(l.colorize(colorBold+colorCyan, fmt.Sprintf(format, args...)))
	}
}

// isTerminal checks if output is a terminal (for color support)
func isTerminal() bool {
	fileInfo, _ := os.Stdout.Stat()
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// appLogger is the process-wide logger. Replaced once at startup when the
// verbose flag is known; tests may swap it to capture output.
var appLogger = NewLogger(false)

// SetAppLogger replaces the process-wide logger.
func SetAppLogger(l *Logger) { appLogger = l }

type logPrefixKey struct{}

// WithLogPrefix returns a context whose log lines carry a phase prefix.
func WithLogPrefix(ctx context.Context, prefix string) context.Context {
	return context.WithValue(ctx, logPrefixKey{}, prefix)
}

func logPrefixFromContext(ctx context.Context) string {
	if prefix, ok := ctx.Value(logPrefixKey{}).(string); ok && prefix != "" {
		return "[" + prefix + "] "
	}
	return ""
}

// Context-aware helpers used throughout the run. The context supplies an
// optional phase prefix set by the orchestrator.

func LogInfo(ctx context.Context, format string, args ...interface{}) {
	appLogger.Info(logPrefixFromContext(ctx)+format, args...)
}

func LogInfoSuccess(ctx context.Context, format string, args ...interface{}) {
	appLogger.InfoSuccess(logPrefixFromContext(ctx)+format, args...)
}

func LogWarn(ctx context.Context, format string, args ...interface{}) {
	appLogger.Warn(logPrefixFromContext(ctx)+format, args...)
}

func LogError(ctx context.Context, format string, args ...interface{}) {
	appLogger.Error(logPrefixFromContext(ctx)+format, args...)
}

func LogDebug(ctx context.Context, format string, args ...interface{}) {
	appLogger.Debug(logPrefixFromContext(ctx)+format, args...)
}

func LogDebugHTTP(ctx context.Context, format string, args ...interface{}) {
	appLogger.DebugHTTP(logPrefixFromContext(ctx)+format, args...)
}

func LogStage(ctx context.Context, format string, args ...interface{}) {
	appLogger.Stage(logPrefixFromContext(ctx)+format, args...)
}
