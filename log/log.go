// Package log is the leveled logger shared by the menu and its hosts. Lines
// go to stderr so they never mix with a terminal UI on stdout.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
)

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log lines and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }
func Info(format string, args ...any)  { logf(LevelInfo, format, args...) }
func Warn(format string, args ...any)  { logf(LevelWarn, format, args...) }

// Error is always emitted.
func Error(format string, args ...any) { logf(LevelError, format, args...) }

func logf(l slog.Level, format string, args ...any) {
	if l < LevelError && GetLevel() > l {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "["+l.String()+"] "+format+"\n", args...)
}
