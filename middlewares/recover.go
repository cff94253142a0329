package middlewares

import (
	"log/slog"
	"runtime"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

// DefaultStackSize is the default maximum stack trace size in bytes.
const DefaultStackSize = 4096

// RecoverConfig configures the recover middleware.
type RecoverConfig struct {
	Logger            *slog.Logger // Destination for panic records (default: slog.Default())
	StackSize         int          // Max stack trace size (default: 4096)
	DisablePrintStack bool         // Disable stack trace in logs
}

// RecoverOption configures RecoverConfig.
type RecoverOption func(*RecoverConfig)

// WithRecoverStackSize sets the maximum stack trace size.
func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.StackSize = size
	}
}

// WithRecoverDisablePrintStack disables including stack trace in logs.
func WithRecoverDisablePrintStack() RecoverOption {
	return func(cfg *RecoverConfig) {
		cfg.DisablePrintStack = true
	}
}

// WithRecoverLogger sets the logger panics are reported to.
func WithRecoverLogger(l *slog.Logger) RecoverOption {
	return func(cfg *RecoverConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// Recover returns middleware that recovers from panics.
// It logs the panic and returns a PanicError to be handled by the ErrorHandler.
// Request ID is automatically included via internal.RequestExtractor() if configured.
func Recover(opts ...RecoverOption) internal.Middleware {
	cfg := &RecoverConfig{
		Logger:    slog.Default(),
		StackSize: DefaultStackSize,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(r *internal.Request) (resp *internal.Response, err error) {
			defer func() {
				if v := recover(); v != nil {
					var stack []byte
					// Allocate buffer only if stack traces are enabled to avoid unnecessary memory allocation
					if !cfg.DisablePrintStack {
						stack = make([]byte, cfg.StackSize)
						n := runtime.Stack(stack, false)
						stack = stack[:n]
					}

					attrs := []any{slog.Any("panic", v)}
					if !cfg.DisablePrintStack {
						attrs = append(attrs, slog.String("stack", string(stack)))
					}
					cfg.Logger.ErrorContext(r.Context(), "panic recovered", attrs...)

					resp = nil
					err = &PanicError{
						Value: v,
						Stack: stack,
					}
				}
			}()

			return next(r)
		}
	}
}
