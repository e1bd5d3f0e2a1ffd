package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the level, format and destination of the process logger.
type Options struct {
	Level  string // debug, info, warn or error
	Format string // text or json
	File   string // when set, logs are also written to this rotated file
}

// Logger is the configured process logger and the writer behind it, which
// is shared with gin and GORM.
type Logger struct {
	*slog.Logger
	Writer io.Writer
	closer io.Closer
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// Setup creates a configured logger, sets it as the slog default, and
// returns it. Unrecognised levels fall back to info and unrecognised formats
// to text.
func Setup(opts Options) *Logger {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	if opts.File != "" {
		file := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = io.MultiWriter(os.Stderr, file)
		closer = file
	}

	logger := New(w, opts.Level, opts.Format)
	slog.SetDefault(logger)
	return &Logger{Logger: logger, Writer: w, closer: closer}
}

// New builds a logger writing to w without touching the slog default.
func New(w io.Writer, level, format string) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// ParseLevel accepts "debug", "info", "warn" and "error" (case-insensitive).
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
