package runtime

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// LogLevel represents the severity of a log message
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
	LogLevelOff
)

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	case LogLevelOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel parses a string into a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return LogLevelDebug, nil
	case "INFO":
		return LogLevelInfo, nil
	case "WARN", "WARNING":
		return LogLevelWarn, nil
	case "ERROR":
		return LogLevelError, nil
	case "OFF", "NONE":
		return LogLevelOff, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}

// Logger is the leveled logger used by runs and the CLI.  The core and
// sampler packages are pure and never log; everything chatty lives at
// this layer.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	SetLevel(level LogLevel)
	Level() LogLevel
}

type stdLogger struct {
	mu    sync.Mutex
	level LogLevel
	out   *log.Logger
}

// NewLogger returns a Logger writing to w at the given level.
func NewLogger(w io.Writer, level LogLevel) Logger {
	return &stdLogger{
		level: level,
		out:   log.New(w, "", log.LstdFlags),
	}
}

// DefaultLogger logs to stderr at Info.
func DefaultLogger() Logger {
	return NewLogger(os.Stderr, LogLevelInfo)
}

func (l *stdLogger) logf(level LogLevel, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

func (l *stdLogger) Debugf(format string, args ...any) { l.logf(LogLevelDebug, format, args...) }
func (l *stdLogger) Infof(format string, args ...any)  { l.logf(LogLevelInfo, format, args...) }
func (l *stdLogger) Warnf(format string, args ...any)  { l.logf(LogLevelWarn, format, args...) }
func (l *stdLogger) Errorf(format string, args ...any) { l.logf(LogLevelError, format, args...) }

func (l *stdLogger) SetLevel(level LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *stdLogger) Level() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}
