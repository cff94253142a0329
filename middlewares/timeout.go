package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// TimeoutConfig configures the timeout middleware.
type TimeoutConfig struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// TimeoutOption configures TimeoutConfig.
type TimeoutOption func(*TimeoutConfig)

// WithTimeoutLogger sets the logger timeouts are reported to.
func WithTimeoutLogger(l *slog.Logger) TimeoutOption {
	return func(cfg *TimeoutConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// Timeout returns middleware that enforces a request timeout.
// If the handler does not complete within the timeout, a TimeoutError is returned
// to be handled by the ErrorHandler, which answers 504 by default.
//
// A panic in the handler goroutine is reported as a PanicError, since an outer
// Recover cannot catch it there.
//
// Note: The handler goroutine continues running after timeout and must stop
// touching the Request once r.Context() is done.
func Timeout(timeout time.Duration, opts ...TimeoutOption) internal.Middleware {
	cfg := &TimeoutConfig{
		Logger:  slog.Default(),
		Timeout: timeout,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	type result struct {
		resp *internal.Response
		err  error
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(r *internal.Request) (*internal.Response, error) {
			parent := r.Context()
			ctx, cancel := context.WithTimeout(parent, cfg.Timeout)
			defer cancel()

			r.WithContext(ctx)

			done := make(chan result, 1)
			go func() {
				defer func() {
					if v := recover(); v != nil {
						stack := make([]byte, DefaultStackSize)
						stack = stack[:runtime.Stack(stack, false)]
						cfg.Logger.ErrorContext(parent, "panic recovered",
							slog.Any("panic", v),
							slog.String("stack", string(stack)),
						)
						done <- result{err: &PanicError{Value: v, Stack: stack}}
					}
				}()

				resp, err := next(r)
				done <- result{resp: resp, err: err}
			}()

			select {
			case res := <-done:
				r.WithContext(parent)
				return res.resp, res.err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					cfg.Logger.WarnContext(parent, "request timeout", slog.String("timeout", cfg.Timeout.String()))
					return nil, &TimeoutError{Duration: cfg.Timeout}
				}
				return nil, ctx.Err()
			}
		}
	}
}
