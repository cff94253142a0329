package foundation

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/config"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/cookie"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/logger"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/params"
)

// Type aliases - public API
type (
	// Request is a read-mostly view over one incoming HTTP request.
	Request = internal.Request

	// Response is a mutable outgoing HTTP response, sent once.
	Response = internal.Response

	// Snapshot holds the raw request data a Request is built from.
	Snapshot = internal.Snapshot

	// Bag is a string-keyed parameter container with typed accessors.
	Bag = params.Bag

	// Cookie is a Set-Cookie directive.
	Cookie = cookie.Cookie

	// Emitter receives a Response on Send.
	Emitter = internal.Emitter

	// HTTPEmitter emits a Response onto an http.ResponseWriter.
	HTTPEmitter = internal.HTTPEmitter

	// Handler adapts a HandlerFunc to http.Handler.
	Handler = internal.Handler

	// HandlerFunc is the signature for business logic.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler converts errors returned from handlers into responses.
	ErrorHandler = internal.ErrorHandler

	// HTTPError carries a status code and message out of a handler.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// Option configures a Handler.
	Option = internal.Option

	// RequestOption configures a Request.
	RequestOption = internal.RequestOption

	// ResponseOption configures a Response.
	ResponseOption = internal.ResponseOption

	// SnapshotOption configures SnapshotFromHTTP.
	SnapshotOption = internal.SnapshotOption

	// ServerOption configures Serve.
	ServerOption = internal.ServerOption

	// Extractor looks a key up in an ordered list of request sources.
	Extractor = internal.Extractor

	// ExtractorSource is one lookup step of an Extractor.
	ExtractorSource = internal.ExtractorSource

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor

	// Config is the layered runtime configuration.
	Config = config.Config
)

// Errors
var (
	ErrInvalidStatusCode = internal.ErrInvalidStatusCode
	ErrAlreadySent       = internal.ErrAlreadySent
	ErrContentTooLarge   = internal.ErrContentTooLarge
	ErrInvalidRedirect   = internal.ErrInvalidRedirect
)

// Constants
const (
	DefaultContentType     = internal.DefaultContentType
	DefaultCharset         = internal.DefaultCharset
	DefaultProtocolVersion = internal.DefaultProtocolVersion
	DefaultRequestIDHeader = internal.DefaultRequestIDHeader
	UnknownStatusText      = internal.UnknownStatusText
	MethodOverrideField    = internal.MethodOverrideField

	AttrFormat      = internal.AttrFormat
	AttrLocale      = internal.AttrLocale
	AttrRequestID   = internal.AttrRequestID
	AttrRoute       = internal.AttrRoute
	AttrRouteParams = internal.AttrRouteParams
)

// Constructors

// NewBag creates a parameter container holding a copy of values.
func NewBag(values map[string]any) *Bag {
	return params.New(values)
}

// NewRequest builds a Request from a Snapshot.
func NewRequest(s Snapshot, opts ...RequestOption) *Request {
	return internal.NewRequest(s, opts...)
}

// NewResponse creates a Response. Status codes outside 100..599 are rejected.
//
// Example:
//
//	resp, err := foundation.NewResponse("<h1>Hi</h1>", http.StatusOK, nil)
func NewResponse(content string, status int, headers map[string]string, opts ...ResponseOption) (*Response, error) {
	return internal.NewResponse(content, status, headers, opts...)
}

// NewJSONResponse encodes v and sets Content-Type: application/json.
func NewJSONResponse(v any, status int, opts ...ResponseOption) (*Response, error) {
	return internal.NewJSONResponse(v, status, opts...)
}

// NewRedirectResponse creates a redirect to url. A zero status means 302.
func NewRedirectResponse(url string, status int, opts ...ResponseOption) (*Response, error) {
	return internal.NewRedirectResponse(url, status, opts...)
}

// NewHandler wraps fn as an http.Handler.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Method(http.MethodGet, "/users/{id}", foundation.NewHandler(showUser,
//	    foundation.WithMiddleware(middlewares.Recover()),
//	))
func NewHandler(fn HandlerFunc, opts ...Option) *Handler {
	return internal.NewHandler(fn, opts...)
}

// NewHTTPEmitter wraps w as an Emitter.
func NewHTTPEmitter(w http.ResponseWriter) *HTTPEmitter {
	return internal.NewHTTPEmitter(w)
}

// SnapshotFromHTTP captures r into a Snapshot.
func SnapshotFromHTTP(r *http.Request, opts ...SnapshotOption) (Snapshot, error) {
	return internal.SnapshotFromHTTP(r, opts...)
}

// NewHTTPError creates an HTTPError. An empty message uses the status text.
func NewHTTPError(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

// NewExtractor creates an Extractor over sources, tried in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// Serve runs h until ctx is cancelled or a shutdown signal arrives.
func Serve(ctx context.Context, h http.Handler, opts ...ServerOption) error {
	return internal.Serve(ctx, h, opts...)
}

// LoadConfig reads defaults, an optional YAML file and environment variables.
func LoadConfig(opts ...config.Option) (Config, error) {
	return config.Load(opts...)
}

// Handler options

// WithLogger sets the logger used for error and send failures.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithMiddleware adds middleware around the HandlerFunc.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithErrorHandler sets a custom error handler for handler errors.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithRequestOptions passes options to every Request the Handler builds.
func WithRequestOptions(opts ...RequestOption) Option {
	return internal.WithRequestOptions(opts...)
}

// WithResponseOptions passes options to responses the Handler builds itself.
func WithResponseOptions(opts ...ResponseOption) Option {
	return internal.WithResponseOptions(opts...)
}

// WithSnapshotOptions passes options to SnapshotFromHTTP.
func WithSnapshotOptions(opts ...SnapshotOption) Option {
	return internal.WithSnapshotOptions(opts...)
}

// WithRequestIDHeader sets the header read and echoed for request IDs.
// An empty name disables the echo.
func WithRequestIDHeader(name string) Option {
	return internal.WithRequestIDHeader(name)
}

// WithRequestIDGenerator replaces the UUID request ID generator.
func WithRequestIDGenerator(gen func() string) Option {
	return internal.WithRequestIDGenerator(gen)
}

// OptionsFromConfig maps cfg onto Handler options.
func OptionsFromConfig(cfg Config) []Option {
	return internal.OptionsFromConfig(cfg)
}

// Request options

// WithClientIPHeaders overrides the server variables consulted by ClientIP.
func WithClientIPHeaders(names ...string) RequestOption {
	return internal.WithClientIPHeaders(names...)
}

// WithMaxContentBytes caps the body read by Content.
func WithMaxContentBytes(n int64) RequestOption {
	return internal.WithMaxContentBytes(n)
}

// WithDefaultLocale sets the locale returned when none was set.
func WithDefaultLocale(locale string) RequestOption {
	return internal.WithDefaultLocale(locale)
}

// WithMethodOverride toggles _method and X-HTTP-Method-Override handling.
func WithMethodOverride(enabled bool) RequestOption {
	return internal.WithMethodOverride(enabled)
}

// WithForwardedPort makes Port trust X-Forwarded-Host and X-Forwarded-Port.
func WithForwardedPort(enabled bool) RequestOption {
	return internal.WithForwardedPort(enabled)
}

// Response options

// WithClock sets the time source used for Expires headers.
func WithClock(now func() time.Time) ResponseOption {
	return internal.WithClock(now)
}

// WithProtocolVersion sets the HTTP version used by String.
func WithProtocolVersion(version string) ResponseOption {
	return internal.WithProtocolVersion(version)
}

// WithCharset sets the charset appended to the default Content-Type.
func WithCharset(charset string) ResponseOption {
	return internal.WithCharset(charset)
}

// WithDefaultContentType replaces text/html as the default Content-Type.
func WithDefaultContentType(contentType string) ResponseOption {
	return internal.WithDefaultContentType(contentType)
}

// WithoutDefaultContentType disables the default Content-Type.
func WithoutDefaultContentType() ResponseOption {
	return internal.WithoutDefaultContentType()
}

// Snapshot options

// WithMaxMemory sets the multipart memory limit.
func WithMaxMemory(n int64) SnapshotOption {
	return internal.WithMaxMemory(n)
}

// WithMaxBodyBytes caps urlencoded bodies read into the snapshot.
func WithMaxBodyBytes(n int64) SnapshotOption {
	return internal.WithMaxBodyBytes(n)
}

// Server options

// WithAddress sets the listen address.
func WithAddress(addr string) ServerOption {
	return internal.WithAddress(addr)
}

// WithServerLogger sets the logger for server lifecycle records.
func WithServerLogger(l *slog.Logger) ServerOption {
	return internal.WithServerLogger(l)
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return internal.WithShutdownTimeout(d)
}

// WithShutdownHook registers a function run after the server stops.
func WithShutdownHook(fn func(context.Context) error) ServerOption {
	return internal.WithShutdownHook(fn)
}

// ServerOptionsFromConfig maps the server section of cfg onto ServerOptions.
func ServerOptionsFromConfig(cfg Config) []ServerOption {
	return internal.ServerOptionsFromConfig(cfg.Server)
}

// Error helpers

// ErrBadRequest creates a 400 HTTPError.
func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

// ErrForbidden creates a 403 HTTPError.
func ErrForbidden(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrForbidden(message, opts...)
}

// ErrNotFound creates a 404 HTTPError.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrMethodNotAllowed creates a 405 HTTPError.
func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrMethodNotAllowed(message, opts...)
}

// ErrInternal creates a 500 HTTPError.
func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

// WithCause attaches the underlying error to an HTTPError.
func WithCause(err error) HTTPErrorOption {
	return internal.WithCause(err)
}

// IsHTTPError reports whether err wraps an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// AsHTTPError extracts the HTTPError from err, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// StatusText returns the reason phrase for code, or UnknownStatusText.
func StatusText(code int) string {
	return internal.StatusText(code)
}

// Context helpers

// RequestFromContext returns the Request stored by the Handler.
func RequestFromContext(ctx context.Context) (*Request, bool) {
	return internal.RequestFromContext(ctx)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return internal.RequestIDFromContext(ctx)
}

// RequestExtractor adds request fields to log records.
func RequestExtractor() ContextExtractor {
	return internal.RequestExtractor()
}

// Extractor sources

// FromAttributes reads the attributes bag.
func FromAttributes() ExtractorSource { return internal.FromAttributes() }

// FromQuery reads the query string.
func FromQuery() ExtractorSource { return internal.FromQuery() }

// FromBody reads the form body.
func FromBody() ExtractorSource { return internal.FromBody() }

// FromCookie reads request cookies.
func FromCookie() ExtractorSource { return internal.FromCookie() }

// FromHeader treats the key as a header name.
func FromHeader() ExtractorSource { return internal.FromHeader() }

// FromJSON reads top-level fields of a JSON body.
func FromJSON() ExtractorSource { return internal.FromJSON() }

// Typed helpers

// Param reads a request attribute (route parameter) as T.
// Returns the zero value when missing or not convertible.
func Param[T internal.Scalar](r *Request, name string) T {
	return internal.Param[T](r, name)
}

// Query reads a query parameter as T.
func Query[T internal.Scalar](r *Request, name string) T {
	return internal.Query[T](r, name)
}

// QueryDefault reads a query parameter as T, returning defaultValue when
// missing or not convertible.
func QueryDefault[T internal.Scalar](r *Request, name string, defaultValue T) T {
	return internal.QueryDefault(r, name, defaultValue)
}

// NewCookieManager builds a cookie.Manager from the cookie section of cfg.
func NewCookieManager(cfg Config) *cookie.Manager {
	return internal.CookieManagerFromConfig(cfg.Cookie)
}

// NewLogger builds a slog.Logger from cfg writing to out. Request fields are
// added to every record made with a request context, and errors go to Sentry
// when a DSN is set.
func NewLogger(cfg config.LogConfig, out io.Writer) *slog.Logger {
	return internal.LoggerFromConfig(cfg, out)
}
