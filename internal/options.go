package internal

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/config"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/cookie"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/logger"
)

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for error and send failures.
// Records are made with the request context, so RequestExtractor applies.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMiddleware adds middleware around the HandlerFunc.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(h *Handler) {
		h.middlewares = append(h.middlewares, mw...)
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
// Returning nil sends a plain 500.
//
// Example:
//
//	foundation.WithErrorHandler(func(r *foundation.Request, err error) *foundation.Response {
//	    resp, _ := foundation.NewJSONResponse(map[string]string{"error": err.Error()}, http.StatusBadRequest)
//	    return resp
//	})
func WithErrorHandler(eh ErrorHandler) Option {
	return func(h *Handler) {
		h.errorHandler = eh
	}
}

// WithRequestOptions passes options to every Request the Handler builds.
func WithRequestOptions(opts ...RequestOption) Option {
	return func(h *Handler) {
		h.requestOpts = append(h.requestOpts, opts...)
	}
}

// WithSnapshotOptions passes options to SnapshotFromHTTP.
func WithSnapshotOptions(opts ...SnapshotOption) Option {
	return func(h *Handler) {
		h.snapshotOpts = append(h.snapshotOpts, opts...)
	}
}

// WithResponseOptions applies options to responses the Handler creates
// itself (errors and empty replies).
func WithResponseOptions(opts ...ResponseOption) Option {
	return func(h *Handler) {
		h.responseOpts = append(h.responseOpts, opts...)
	}
}

// WithRequestIDHeader changes the header the request ID is read from and
// echoed in. An empty name disables the echo.
func WithRequestIDHeader(name string) Option {
	return func(h *Handler) {
		h.requestIDHeader = name
	}
}

// WithRequestIDGenerator replaces the UUID generator.
func WithRequestIDGenerator(gen func() string) Option {
	return func(h *Handler) {
		if gen != nil {
			h.newRequestID = gen
		}
	}
}

// OptionsFromConfig maps a loaded configuration onto Handler options.
func OptionsFromConfig(cfg config.Config) []Option {
	return []Option{
		WithLogger(LoggerFromConfig(cfg.Log, os.Stdout)),
		WithRequestOptions(RequestOptionsFromConfig(cfg.Request)...),
		WithSnapshotOptions(
			WithMaxMemory(cfg.Request.MaxMemoryBytes),
			WithMaxBodyBytes(cfg.Request.MaxContentBytes),
		),
		WithResponseOptions(ResponseOptionsFromConfig(cfg.Response)...),
	}
}

// RequestOptionsFromConfig maps request settings onto Request options.
func RequestOptionsFromConfig(cfg config.RequestConfig) []RequestOption {
	opts := []RequestOption{
		WithMaxContentBytes(cfg.MaxContentBytes),
		WithMethodOverride(cfg.MethodOverride),
		WithForwardedPort(cfg.TrustForwardedPort),
	}
	if cfg.DefaultLocale != "" {
		opts = append(opts, WithDefaultLocale(cfg.DefaultLocale))
	}
	if len(cfg.ClientIPHeaders) > 0 {
		opts = append(opts, WithClientIPHeaders(cfg.ClientIPHeaders...))
	}
	return opts
}

// ResponseOptionsFromConfig maps response settings onto Response options.
func ResponseOptionsFromConfig(cfg config.ResponseConfig) []ResponseOption {
	var opts []ResponseOption
	if cfg.ContentType != "" {
		opts = append(opts, WithDefaultContentType(cfg.ContentType))
	}
	if cfg.ProtocolVersion != "" {
		opts = append(opts, WithProtocolVersion(cfg.ProtocolVersion))
	}
	return opts
}

// CookieManagerFromConfig builds a cookie.Manager from cookie settings.
func CookieManagerFromConfig(cfg config.CookieConfig) *cookie.Manager {
	opts := []cookie.Option{
		cookie.WithSecure(cfg.Secure),
		cookie.WithHTTPOnly(cfg.HTTPOnly),
		cookie.WithSameSite(parseSameSite(cfg.SameSite)),
	}
	if cfg.Secret != "" {
		opts = append(opts, cookie.WithSecret(cfg.Secret))
	}
	if cfg.Domain != "" {
		opts = append(opts, cookie.WithDomain(cfg.Domain))
	}
	if cfg.Path != "" {
		opts = append(opts, cookie.WithPath(cfg.Path))
	}
	return cookie.New(opts...)
}

// LoggerFromConfig builds the logger described by cfg, writing to out.
func LoggerFromConfig(cfg config.LogConfig, out io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevel(logger.ParseLevel(cfg.Level)),
		logger.WithFormat(logger.Format(strings.ToLower(cfg.Format))),
		logger.WithExtractors(RequestExtractor()),
	}
	if out != nil {
		opts = append(opts, logger.WithOutput(out))
	}
	if cfg.SentryDSN != "" {
		opts = append(opts, logger.WithSentry(logger.SentryConfig{
			DSN:         cfg.SentryDSN,
			Environment: cfg.SentryEnvironment,
			MinLevel:    slog.LevelError,
		}))
	}
	return logger.New(opts...)
}

func parseSameSite(s string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	case "default":
		return http.SameSiteDefaultMode
	}
	return http.SameSiteLaxMode
}
