// Package log provides structured file logging for corsair.
// Logging is off by default and enabled via --debug or CORSAIR_DEBUG so the
// TUI never fights with stdout; entries go to a log file and are mirrored to
// a pub/sub broker the dashboard log overlay subscribes to.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/corsair-sc/corsair/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatItems   Category = "items"   // Item registry construction and queries
	CatUEX     Category = "uex"     // UEX API calls
	CatCache   Category = "cache"   // Response cache hits and misses
	CatGraph   Category = "graph"   // Route graph building
	CatIntel   Category = "intel"   // Target analysis
	CatServer  Category = "server"  // REST API
	CatDB      Category = "db"      // Snapshot store
	CatConfig  Category = "config"  // Configuration loading
	CatWatcher Category = "watcher" // Dataset file watching
	CatUI      Category = "ui"      // Dashboard updates
)

// Logger writes timestamped key=value entries to a file.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the global logger. Returns a cleanup function that closes
// the log file.
func Init(path string) (func(), error) {
	var initErr error
	once.Do(func() {
		defaultLogger, initErr = newLogger(path)
	})
	if initErr != nil {
		return nil, initErr
	}
	if defaultLogger == nil {
		return nil, fmt.Errorf("logger initialization already attempted and failed")
	}
	return func() {
		if defaultLogger != nil && defaultLogger.file != nil {
			_ = defaultLogger.file.Close()
		}
	}, nil
}

func newLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // G304: user-chosen debug log path
	if err != nil {
		return nil, err
	}
	return &Logger{
		file:     f,
		writer:   f,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}, nil
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.enabled = enabled
		defaultLogger.mu.Unlock()
	}
}

// SetMinLevel sets the minimum level that gets written.
func SetMinLevel(level Level) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.minLevel = level
		defaultLogger.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value attached.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	if defaultLogger == nil || !defaultLogger.enabled {
		return
	}
	if level < defaultLogger.minLevel {
		return
	}

	defaultLogger.mu.Lock()
	defer defaultLogger.mu.Unlock()

	// Format: 2026-08-31T10:45:00 [INFO] [uex] message key=value
	entry := fmt.Sprintf("%s [%s] [%s] %s",
		time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		entry += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		entry += fmt.Sprintf(" %v=<missing>", fields[len(fields)-1])
	}
	entry += "\n"

	if defaultLogger.writer != nil {
		_, _ = defaultLogger.writer.Write([]byte(entry))
	}
	if defaultLogger.broker != nil {
		defaultLogger.broker.Publish(pubsub.CreatedEvent, entry)
	}
}

// LogEvent is a pubsub event containing one formatted log entry.
type LogEvent = pubsub.Event[string]

// Subscribe returns a channel of log entries for the dashboard overlay.
// Returns nil when the logger is not initialized.
func Subscribe(ctx context.Context) <-chan LogEvent {
	if defaultLogger == nil || defaultLogger.broker == nil {
		return nil
	}
	return defaultLogger.broker.Subscribe(ctx)
}
