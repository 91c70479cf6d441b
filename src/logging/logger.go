// Package logging is the small levelled logger shared by the renderer, the surfaces and the CLI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

var currentLevel atomic.Int32

func init() { currentLevel.Store(int32(LevelInfo)) }

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// ParseLevel maps a level name (case-insensitive) to a LogLevel.
func ParseLevel(s string) (LogLevel, bool) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// SetLogLevel parses and sets the global log level. Unknown names are ignored.
func SetLogLevel(s string) {
	l, ok := ParseLevel(s)
	if !ok {
		return
	}
	currentLevel.Store(int32(l))
}

// SetOutput redirects log output, e.g. away from stderr when the diagram itself goes to stdout.
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

// GetLogLevel returns the current global log level.
func GetLogLevel() LogLevel { return LogLevel(currentLevel.Load()) }

// Enabled reports whether messages at level l are written.
func Enabled(l LogLevel) bool { return GetLogLevel() <= l }

func logf(l LogLevel, format string, args ...any) {
	if !Enabled(l) {
		return
	}
	// Plain messages may contain literal '%'; only format when args are present.
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", l, format)
		return
	}
	baseLogger.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...any) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...any)  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...any)  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...any) { logf(LevelError, format, a...) }

// TimeTrack logs the time elapsed since start at debug level.
// Use as: defer logging.TimeTrack(time.Now(), "render").
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
