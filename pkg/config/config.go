package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the environment variable prefix read by Load.
const DefaultEnvPrefix = "FOUNDATION_"

// ErrLoad is returned when a configuration source cannot be read.
var ErrLoad = errors.New("config: load failed")

// Config is the runtime configuration of the HTTP message layer.
type Config struct {
	Response ResponseConfig `conf:"response"`
	Request  RequestConfig  `conf:"request"`
	Cookie   CookieConfig   `conf:"cookie"`
	Log      LogConfig      `conf:"log"`
	Server   ServerConfig   `conf:"server"`
}

// ResponseConfig sets response defaults.
type ResponseConfig struct {
	ContentType     string `conf:"content_type"`
	ProtocolVersion string `conf:"protocol_version"`
}

// RequestConfig tunes request parsing.
type RequestConfig struct {
	// ClientIPHeaders overrides the candidate server variables for client IP resolution.
	ClientIPHeaders []string `conf:"client_ip_headers"`
	DefaultLocale   string   `conf:"default_locale"`
	MaxContentBytes int64    `conf:"max_content_bytes"`
	MaxMemoryBytes  int64    `conf:"max_memory_bytes"`
	MethodOverride  bool     `conf:"method_override"`
	// TrustForwardedPort takes the port from X-Forwarded-Host and X-Forwarded-Port.
	TrustForwardedPort bool `conf:"trust_forwarded_port"`
}

// CookieConfig sets cookie directive defaults.
type CookieConfig struct {
	Secret   string `conf:"secret"`
	Domain   string `conf:"domain"`
	Path     string `conf:"path"`
	SameSite string `conf:"same_site"`
	Secure   bool   `conf:"secure"`
	HTTPOnly bool   `conf:"http_only"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level             string `conf:"level"`
	Format            string `conf:"format"`
	SentryDSN         string `conf:"sentry_dsn"`
	SentryEnvironment string `conf:"sentry_environment"`
}

// ServerConfig configures the HTTP server loop.
type ServerConfig struct {
	Address         string        `conf:"address"`
	ShutdownTimeout time.Duration `conf:"shutdown_timeout"`
}

// Defaults returns the built-in configuration values keyed by koanf path.
func Defaults() map[string]any {
	return map[string]any{
		"response.content_type":        "text/html; charset=UTF-8",
		"response.protocol_version":    "1.1",
		"request.default_locale":       "en",
		"request.max_content_bytes":    int64(10 << 20),
		"request.max_memory_bytes":     int64(32 << 20),
		"request.method_override":      true,
		"request.trust_forwarded_port": false,
		"cookie.path":                  "/",
		"cookie.same_site":             "lax",
		"cookie.http_only":             true,
		"log.level":                    "info",
		"log.format":                   "json",
		"log.sentry_environment":       "production",
		"server.address":               ":8080",
		"server.shutdown_timeout":      "30s",
	}
}

type options struct {
	envPrefix string
	file      string
	overrides map[string]any
}

// Option configures Load.
type Option func(*options)

// WithFile loads a YAML file between the defaults and the environment.
func WithFile(path string) Option {
	return func(o *options) {
		o.file = path
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithOverrides applies values on top of every other source.
// Keys use dotted koanf paths such as "log.level".
func WithOverrides(values map[string]any) Option {
	return func(o *options) {
		o.overrides = values
	}
}

// Load builds a Config from defaults, an optional YAML file and environment
// variables, in that order of increasing precedence.
//
// Environment keys drop the prefix, lowercase, and map "__" to nesting:
// FOUNDATION_LOG__LEVEL=debug sets log.level.
func Load(opts ...Option) (Config, error) {
	o := options{envPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("%w: defaults: %w", ErrLoad, err)
	}

	if o.file != "" {
		if err := k.Load(file.Provider(o.file), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("%w: file %s: %w", ErrLoad, o.file, err)
		}
	}

	if err := k.Load(env.Provider(o.envPrefix, ".", func(s string) string {
		return transformEnv(s, o.envPrefix)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("%w: env: %w", ErrLoad, err)
	}

	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return Config{}, fmt.Errorf("%w: overrides: %w", ErrLoad, err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "conf"}); err != nil {
		return Config{}, fmt.Errorf("%w: unmarshal: %w", ErrLoad, err)
	}

	return cfg, nil
}

func transformEnv(s, prefix string) string {
	s = strings.TrimPrefix(s, prefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
