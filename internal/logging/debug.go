package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DebugEnv is the environment variable that turns on debug output.
const DebugEnv = "AC_DEBUG"

var (
	mu     sync.Mutex
	output io.Writer = os.Stderr
)

// DebugEnabled returns true if debug mode is enabled via AC_DEBUG
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// SetOutput redirects log output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := output
	output = w
	return prev
}

// Logger returns a text logger on the current output. Debug records are only
// emitted when debug mode is enabled.
func Logger() *slog.Logger {
	mu.Lock()
	w := output
	mu.Unlock()

	level := slog.LevelInfo
	if DebugEnabled() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Debug logs a structured debug record.
func Debug(msg string, args ...any) {
	if DebugEnabled() {
		Logger().Debug(msg, args...)
	}
}

// Debugf logs a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(fmt.Sprintf(format, args...))
	}
}

// Debugln logs a debug message only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		Logger().Debug(fmt.Sprint(args...))
	}
}
