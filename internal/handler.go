package internal

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerFunc is the signature for business logic.
// It receives the Request and returns the Response to send.
// Returning a non-nil error hands control to the ErrorHandler.
//
// Example:
//
//	func show(r *foundation.Request) (*foundation.Response, error) {
//	    id := r.Attributes().GetInt("id", 0)
//	    if id == 0 {
//	        return nil, foundation.ErrNotFound("")
//	    }
//	    return foundation.NewJSONResponse(map[string]int{"id": id}, http.StatusOK)
//	}
type HandlerFunc func(r *Request) (*Response, error)

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect or modify the Request, short-circuit processing,
// or decorate the Response.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler converts an error returned by a HandlerFunc into a Response.
type ErrorHandler func(r *Request, err error) *Response

// DefaultRequestIDHeader carries the request ID in both directions.
const DefaultRequestIDHeader = "X-Request-ID"

// Handler adapts a HandlerFunc to http.Handler. For every request it builds
// a Request from a transport snapshot, copies chi route parameters into the
// attributes, runs the middleware chain and sends the Response once.
type Handler struct {
	fn              HandlerFunc
	logger          *slog.Logger
	errorHandler    ErrorHandler
	newRequestID    func() string
	requestIDHeader string
	middlewares     []Middleware
	requestOpts     []RequestOption
	snapshotOpts    []SnapshotOption
	responseOpts    []ResponseOption
}

// NewHandler creates a Handler for fn.
func NewHandler(fn HandlerFunc, opts ...Option) *Handler {
	h := &Handler{
		fn:              fn,
		logger:          slog.Default(),
		newRequestID:    uuid.NewString,
		requestIDHeader: DefaultRequestIDHeader,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.errorHandler == nil {
		h.errorHandler = h.defaultErrorHandler
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot, snapErr := SnapshotFromHTTP(r, h.snapshotOpts...)
	if snapErr != nil {
		// Keep the environment so the error response can still be logged
		// and negotiated.
		snapshot = Snapshot{Query: formValues(r.URL.Query()), Server: serverVars(r)}
	}

	req := NewRequest(snapshot, h.requestOpts...)

	reqID := req.Header(h.requestIDHeader)
	if reqID == "" {
		reqID = h.newRequestID()
	}
	req.Attributes().Set(AttrRequestID, reqID)
	importRoute(req, r)
	req.WithContext(WithRequest(r.Context(), req))

	var resp *Response
	if snapErr != nil {
		resp = h.errorHandler(req, snapErr)
	} else {
		resp = h.run(req)
	}

	if resp == nil {
		resp = h.fallbackResponse()
	}
	if h.requestIDHeader != "" {
		resp.SetHeader(h.requestIDHeader, reqID)
	}

	if err := resp.Send(NewHTTPEmitter(w)); err != nil {
		h.logger.WarnContext(req.Context(), "send response", slog.Any("error", err))
	}
}

func (h *Handler) run(req *Request) *Response {
	next := h.fn
	for i := len(h.middlewares) - 1; i >= 0; i-- {
		next = h.middlewares[i](next)
	}

	resp, err := next(req)
	if err != nil {
		return h.errorHandler(req, err)
	}
	if resp == nil {
		return h.emptyResponse()
	}
	return resp
}

// statusCoder is implemented by errors that know their HTTP status.
type statusCoder interface {
	StatusCode() int
}

// defaultErrorHandler renders HTTPErrors with their code and message, other
// status-carrying errors with their reason phrase, and everything else as
// 500. Server errors are logged.
func (h *Handler) defaultErrorHandler(req *Request, err error) *Response {
	code := http.StatusInternalServerError
	message := StatusText(code)

	var coder statusCoder
	if httpErr := AsHTTPError(err); httpErr != nil && ValidStatusCode(httpErr.Code) {
		code = httpErr.Code
		message = httpErr.Message
	} else if errors.As(err, &coder) && ValidStatusCode(coder.StatusCode()) {
		code = coder.StatusCode()
		message = StatusText(code)
	} else if errors.Is(err, ErrContentTooLarge) {
		code = http.StatusRequestEntityTooLarge
		message = StatusText(code)
	}

	if code >= http.StatusInternalServerError {
		h.logger.ErrorContext(req.Context(), "request failed",
			slog.Int("status", code),
			slog.Any("error", err),
		)
	} else {
		h.logger.DebugContext(req.Context(), "request rejected",
			slog.Int("status", code),
			slog.Any("error", err),
		)
	}

	resp, rerr := NewResponse(message, code, map[string]string{
		"Content-Type":           "text/plain; charset=utf-8",
		"X-Content-Type-Options": "nosniff",
	}, h.responseOpts...)
	if rerr != nil {
		return h.fallbackResponse()
	}
	return resp
}

func (h *Handler) emptyResponse() *Response {
	resp, _ := NewResponse("", http.StatusNoContent, nil, h.responseOpts...)
	return resp
}

func (h *Handler) fallbackResponse() *Response {
	resp, _ := NewResponse(StatusText(http.StatusInternalServerError), http.StatusInternalServerError,
		map[string]string{"Content-Type": "text/plain; charset=utf-8"})
	return resp
}

// importRoute copies chi URL parameters and the route pattern into the
// request attributes.
func importRoute(req *Request, r *http.Request) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return
	}

	routeParams := make(map[string]any, len(rctx.URLParams.Keys))
	for i, key := range rctx.URLParams.Keys {
		if key == "" || key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		value := rctx.URLParams.Values[i]
		routeParams[key] = value
		req.Attributes().Set(key, value)
	}
	req.Attributes().Set(AttrRouteParams, routeParams)

	if pattern := rctx.RoutePattern(); pattern != "" {
		req.Attributes().Set(AttrRoute, pattern)
	}
}
