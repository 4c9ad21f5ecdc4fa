// Package logging wraps a process-wide zerolog logger.  Call Init once
// from main; before that a JSON logger at info level writes to stderr.
package logging

import (
    "io"
    "os"
    "strings"
    "sync"
    "time"

    "github.com/rs/zerolog"
)

var (
    log zerolog.Logger
    mu  sync.RWMutex
)

func init() {
    log = build("info", "json", os.Stderr)
}

// Init reconfigures the global logger.  format is "json" or "console";
// unknown levels fall back to info.
func Init(level, format string, out io.Writer) {
    if out == nil {
        out = os.Stderr
    }
    mu.Lock()
    defer mu.Unlock()
    log = build(level, format, out)
}

func build(level, format string, out io.Writer) zerolog.Logger {
    lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
    if err != nil || level == "" {
        lvl = zerolog.InfoLevel
    }
    if strings.EqualFold(format, "console") {
        out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
    }
    return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Logger returns a copy of the global logger.
func Logger() zerolog.Logger {
    mu.RLock()
    defer mu.RUnlock()
    return log
}

func Debug() *zerolog.Event { l := Logger(); return l.Debug() }
func Info() *zerolog.Event  { l := Logger(); return l.Info() }
func Warn() *zerolog.Event  { l := Logger(); return l.Warn() }
func Error() *zerolog.Event { l := Logger(); return l.Error() }
func Fatal() *zerolog.Event { l := Logger(); return l.Fatal() }
