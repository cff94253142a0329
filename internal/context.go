package internal

import (
	"context"
	"log/slog"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/logger"
)

// requestKey is the context key for the current Request.
type requestKey struct{}

// WithRequest returns a copy of ctx carrying r.
func WithRequest(ctx context.Context, r *Request) context.Context {
	return context.WithValue(ctx, requestKey{}, r)
}

// RequestFromContext returns the Request stored by the Handler.
func RequestFromContext(ctx context.Context) (*Request, bool) {
	r, ok := ctx.Value(requestKey{}).(*Request)
	return r, ok && r != nil
}

// RequestIDFromContext returns the request ID assigned by the Handler.
func RequestIDFromContext(ctx context.Context) string {
	r, ok := RequestFromContext(ctx)
	if !ok {
		return ""
	}
	return r.Attributes().GetString(AttrRequestID, "")
}

// RequestExtractor returns a ContextExtractor for logger.WithExtractors.
// Log records made with a request context gain a "request" group holding
// request_id, method, path and client_ip.
func RequestExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		r, ok := RequestFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}

		attrs := []any{
			slog.String("method", r.Method()),
			slog.String("path", r.PathInfo()),
		}
		if id := r.Attributes().GetString(AttrRequestID, ""); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}
		if ip, ok := r.ClientIP(); ok {
			attrs = append(attrs, slog.String("client_ip", ip))
		}
		return slog.Group("request", attrs...), true
	}
}
