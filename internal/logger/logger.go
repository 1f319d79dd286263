package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Level represents the log level.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Format represents the log output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config holds logger configuration.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: os.Stdout,
	}
}

// Logger wraps slog.Logger with a few service specific helpers.
type Logger struct {
	*slog.Logger
	config *Config
}

// New creates a new Logger instance.
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(time.RFC3339))
				}
			}
			return a
		},
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	var handler slog.Handler
	switch strings.ToLower(string(cfg.Format)) {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
		config: cfg,
	}
}

// Nop returns a logger that discards everything. Used by tests.
func Nop() *Logger {
	return New(&Config{Level: LevelError, Format: FormatText, Output: io.Discard})
}

func parseLevel(l Level) slog.Level {
	switch strings.ToUpper(string(l)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetDefault sets this logger as the default slog logger.
func (l *Logger) SetDefault() {
	slog.SetDefault(l.Logger)
}

// WithRequestID returns a logger with request_id attribute.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With("request_id", requestID),
		config: l.config,
	}
}

// WithComponent returns a logger with component attribute.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger: l.Logger.With("component", component),
		config: l.config,
	}
}

// APIRequest logs a completed API request.
func (l *Logger) APIRequest(method, path string, statusCode int, duration time.Duration, clientIP string) {
	l.Info("api request",
		"method", method,
		"path", path,
		"status", statusCode,
		"duration_ms", duration.Milliseconds(),
		"client_ip", clientIP,
	)
}

// JobAdded logs a successful job insert.
func (l *Logger) JobAdded(jobID int64, title string) {
	l.Info("job added",
		"job_id", jobID,
		"job_title", title,
	)
}

// RecommendationCompleted logs the outcome of one scoring pass.
func (l *Logger) RecommendationCompleted(profileName string, candidates, matched int, duration time.Duration) {
	l.Info("recommendation completed",
		"profile", profileName,
		"candidates", candidates,
		"matched", matched,
		"duration_ms", duration.Milliseconds(),
	)
}
