package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format selects the record encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config holds logger construction settings.
type Config struct {
	Output     io.Writer
	Format     Format
	Level      slog.Level
	Extractors []ContextExtractor
	Sentry     SentryConfig
}

// Option configures the logger.
type Option func(*Config)

// WithOutput sets the destination writer (default: os.Stdout).
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.Output = w
	}
}

// WithFormat sets the record encoding (default: JSON).
func WithFormat(f Format) Option {
	return func(c *Config) {
		c.Format = f
	}
}

// WithLevel sets the minimum level (default: Info).
func WithLevel(l slog.Level) Option {
	return func(c *Config) {
		c.Level = l
	}
}

// WithExtractors adds context extractors applied to each record.
func WithExtractors(ex ...ContextExtractor) Option {
	return func(c *Config) {
		c.Extractors = append(c.Extractors, ex...)
	}
}

// WithSentry enables the Sentry sink. An empty DSN keeps it disabled.
func WithSentry(cfg SentryConfig) Option {
	return func(c *Config) {
		c.Sentry = cfg
	}
}

// New creates a structured logger.
func New(opts ...Option) *slog.Logger {
	cfg := Config{
		Output: os.Stdout,
		Format: FormatJSON,
		Level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.Level}

	var base slog.Handler
	if cfg.Format == FormatText {
		base = slog.NewTextHandler(cfg.Output, handlerOpts)
	} else {
		base = slog.NewJSONHandler(cfg.Output, handlerOpts)
	}

	if sentryHandler := newSentryHandler(cfg.Sentry, base); sentryHandler != nil {
		base = newMultiHandler(base, sentryHandler)
	}

	return slog.New(NewLogHandlerDecorator(base, cfg.Extractors...))
}

// NewNope creates a no-op logger that discards all output.
// Use this as a default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Unknown values yield Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
