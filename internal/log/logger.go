package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger wraps the slog logger shared by the whole application
type Logger struct {
	logger *slog.Logger
	file   *os.File
	level  *slog.LevelVar
}

var globalLogger *Logger

// init creates the global logger with console output by default
func init() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	globalLogger = &Logger{
		logger: slog.New(handler),
		file:   os.Stdout,
		level:  level,
	}
}

// SetFileOutput redirects the global logger to the specified file.
// The terminal UI owns stdout, so main always calls this before starting it.
func SetFileOutput(filename string) error {
	logger, err := NewLogger(filename)
	if err != nil {
		return err
	}
	if globalLogger != nil {
		logger.level.Set(globalLogger.level.Level())
		if globalLogger.file != os.Stdout {
			globalLogger.file.Close()
		}
	}

	globalLogger = logger
	return nil
}

// SetOutput redirects the global logger to w without taking ownership of it
func SetOutput(w io.Writer) {
	level := globalLogger.level
	globalLogger = &Logger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		file:   os.Stdout,
		level:  level,
	}
}

// NewLogger creates a logger that appends to the specified file
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   slog.TimeKey,
					Value: slog.StringValue(a.Value.Time().Format("2006/01/02 15:04:05.000000")),
				}
			}
			return a
		},
	})

	return &Logger{
		logger: slog.New(handler),
		file:   file,
		level:  level,
	}, nil
}

// SetLevel parses a level name (debug, info, warn, error). Unknown names fall back to info.
func SetLevel(name string) {
	var level slog.Level
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	globalLogger.level.Set(level)
}

func Debug(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Debug(msg, args...)
	}
}

func Info(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Info(msg, args...)
	}
}

func Warn(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Warn(msg, args...)
	}
}

func Error(msg string, args ...any) {
	if globalLogger != nil {
		globalLogger.logger.Error(msg, args...)
	}
}

// Close closes the log file if one is open
func Close() {
	if globalLogger != nil && globalLogger.file != os.Stdout {
		globalLogger.file.Close()
	}
}
