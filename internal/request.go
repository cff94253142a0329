package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"mime/multipart"
	"strings"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/clientip"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/params"
)

// Reserved attribute names.
const (
	AttrFormat      = "_format"
	AttrLocale      = "_locale"
	AttrRequestID   = "_request_id"
	AttrRoute       = "_route"
	AttrRouteParams = "_route_params"
)

// parameterChain is the lookup order of Request.Get.
// Attributes come first so values set by a router shadow client input.
var parameterChain = NewExtractor(FromAttributes(), FromQuery(), FromBody())

// Request wraps one incoming HTTP request.
// It is not safe for concurrent use; one Request serves one unit of work.
type Request struct {
	ctx context.Context

	query      *params.Bag
	body       *params.Bag
	attributes *params.Bag
	cookies    *params.Bag
	files      *params.Bag
	server     *params.Bag

	source     io.Reader
	content    []byte
	contentErr error
	json       map[string]any

	cfg requestConfig

	contentRead bool
	jsonParsed  bool
}

type requestConfig struct {
	clientIPHeaders []string
	defaultLocale   string
	maxContentBytes int64
	methodOverride  bool
	forwardedPort   bool
}

// RequestOption configures a Request.
type RequestOption func(*requestConfig)

// WithClientIPHeaders replaces the server variables consulted by ClientIP.
func WithClientIPHeaders(names ...string) RequestOption {
	return func(c *requestConfig) {
		c.clientIPHeaders = names
	}
}

// WithMaxContentBytes caps the raw body size. Zero or negative disables the cap.
func WithMaxContentBytes(n int64) RequestOption {
	return func(c *requestConfig) {
		c.maxContentBytes = n
	}
}

// WithDefaultLocale sets the locale returned when no _locale attribute exists.
func WithDefaultLocale(locale string) RequestOption {
	return func(c *requestConfig) {
		c.defaultLocale = locale
	}
}

// WithMethodOverride toggles the _method field and X-HTTP-Method-Override support.
func WithMethodOverride(enabled bool) RequestOption {
	return func(c *requestConfig) {
		c.methodOverride = enabled
	}
}

// WithForwardedPort makes Port follow X-Forwarded-Host and X-Forwarded-Port
// when a proxy sets them. Off by default.
func WithForwardedPort(enabled bool) RequestOption {
	return func(c *requestConfig) {
		c.forwardedPort = enabled
	}
}

// NewRequest builds a Request from a transport snapshot. It performs no I/O.
func NewRequest(s Snapshot, opts ...RequestOption) *Request {
	cfg := requestConfig{
		clientIPHeaders: clientip.DefaultCandidates,
		defaultLocale:   "en",
		methodOverride:  true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Request{
		ctx:        context.Background(),
		query:      params.New(s.Query),
		body:       params.New(s.Body),
		attributes: params.New(s.Attributes),
		cookies:    params.New(s.Cookies),
		files:      params.New(s.Files),
		server:     params.New(s.Server),
		source:     s.Content,
		cfg:        cfg,
	}
}

// Query returns the query string parameters.
func (r *Request) Query() *params.Bag { return r.query }

// Body returns the decoded form body parameters.
func (r *Request) Body() *params.Bag { return r.body }

// Attributes returns values derived by collaborators such as a router.
func (r *Request) Attributes() *params.Bag { return r.attributes }

// Cookies returns the raw request cookies.
func (r *Request) Cookies() *params.Bag { return r.cookies }

// Files returns uploaded file descriptors.
func (r *Request) Files() *params.Bag { return r.files }

// Server returns the transport environment (CGI-style server variables).
func (r *Request) Server() *params.Bag { return r.server }

// Context returns the request's context. Never nil.
func (r *Request) Context() context.Context { return r.ctx }

// WithContext replaces the request's context and returns the same Request.
func (r *Request) WithContext(ctx context.Context) *Request {
	if ctx != nil {
		r.ctx = ctx
	}
	return r
}

// Get returns the first value found in attributes, query, then body.
func (r *Request) Get(key string, def any) any {
	if v, ok := parameterChain.Extract(r, key); ok {
		return v
	}
	return def
}

// File returns the first uploaded file stored under name.
func (r *Request) File(name string) (*multipart.FileHeader, bool) {
	switch f := r.files.Get(name, nil).(type) {
	case *multipart.FileHeader:
		return f, f != nil
	case []*multipart.FileHeader:
		if len(f) > 0 {
			return f[0], true
		}
	}
	return nil, false
}

// Content returns the raw body. The underlying reader is consumed on the
// first call; later calls return the memoized bytes or read error.
func (r *Request) Content() ([]byte, error) {
	if r.contentRead {
		return r.content, r.contentErr
	}
	r.contentRead = true

	if r.source == nil {
		return nil, nil
	}

	src := r.source
	if r.cfg.maxContentBytes > 0 {
		src = io.LimitReader(src, r.cfg.maxContentBytes+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		r.contentErr = fmt.Errorf("read content: %w", err)
		return nil, r.contentErr
	}
	if r.cfg.maxContentBytes > 0 && int64(len(data)) > r.cfg.maxContentBytes {
		r.contentErr = fmt.Errorf("%w: limit %d bytes", ErrContentTooLarge, r.cfg.maxContentBytes)
		return nil, r.contentErr
	}

	r.content = data
	return r.content, nil
}

// JSONContent returns the body decoded as a JSON object.
// The body is parsed once; an empty body or malformed JSON yields nil.
// Only transport read failures are returned as errors.
func (r *Request) JSONContent() (map[string]any, error) {
	if r.jsonParsed {
		return r.json, nil
	}

	data, err := r.Content()
	if err != nil {
		return nil, err
	}
	r.jsonParsed = true

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, nil
	}
	r.json = decoded
	return r.json, nil
}

// IsJSON reports whether the content type mentions json.
func (r *Request) IsJSON() bool {
	ct, ok := r.ContentType()
	return ok && strings.Contains(strings.ToLower(ct), "json")
}

// All merges query and body parameters, plus the decoded JSON object for
// JSON requests. Later sources overwrite earlier keys.
func (r *Request) All() (map[string]any, error) {
	all := r.query.All()
	maps.Copy(all, r.body.All())

	if !r.IsJSON() {
		return all, nil
	}

	decoded, err := r.JSONContent()
	if err != nil {
		return nil, err
	}
	maps.Copy(all, decoded)
	return all, nil
}

// ContentType returns the media type without parameters.
func (r *Request) ContentType() (string, bool) {
	raw := r.Header("Content-Type")
	if raw == "" {
		return "", false
	}
	mediaType, _, _ := strings.Cut(raw, ";")
	mediaType = strings.TrimSpace(mediaType)
	return mediaType, mediaType != ""
}

// ClientIP returns the first public address found in proxy headers or the
// connection origin. Proxy headers are trusted unconditionally.
func (r *Request) ClientIP() (string, bool) {
	return clientip.Resolve(r.serverValue, r.cfg.clientIPHeaders)
}

// Header returns a request header value from the server variables.
// Lookup is case-insensitive: "X-Forwarded-For" reads HTTP_X_FORWARDED_FOR.
func (r *Request) Header(name string) string {
	v, _ := r.serverValue(serverKey(name))
	return v
}

// HasHeader reports whether the named header was sent.
func (r *Request) HasHeader(name string) bool {
	return r.server.Has(serverKey(name))
}

// Headers returns every request header keyed by canonical name.
func (r *Request) Headers() map[string]string {
	out := make(map[string]string)
	for _, key := range r.server.Keys() {
		name, ok := headerName(key)
		if !ok {
			continue
		}
		out[name] = r.server.GetString(key, "")
	}
	return out
}

// IsXMLHTTPRequest reports whether the request was sent by a JavaScript library.
func (r *Request) IsXMLHTTPRequest() bool {
	return r.Header("X-Requested-With") == "XMLHttpRequest"
}

// IsHTMX reports whether the request originated from HTMX.
func (r *Request) IsHTMX() bool {
	return r.Header("HX-Request") == "true"
}

// Locale returns the _locale attribute or the configured default.
func (r *Request) Locale() string {
	return r.attributes.GetString(AttrLocale, r.cfg.defaultLocale)
}

// SetLocale stores the locale as the _locale attribute.
func (r *Request) SetLocale(locale string) {
	r.attributes.Set(AttrLocale, locale)
}

func (r *Request) serverValue(name string) (string, bool) {
	if !r.server.Has(name) {
		return "", false
	}
	v := r.server.GetString(name, "")
	return v, v != ""
}

// serverKey maps a header name to its server variable.
func serverKey(name string) string {
	key := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	switch key {
	case "CONTENT_TYPE", "CONTENT_LENGTH", "CONTENT_MD5":
		return key
	}
	return "HTTP_" + key
}

// headerName maps a server variable back to a canonical header name.
func headerName(key string) (string, bool) {
	switch key {
	case "CONTENT_TYPE", "CONTENT_LENGTH", "CONTENT_MD5":
	default:
		if !strings.HasPrefix(key, "HTTP_") {
			return "", false
		}
		key = strings.TrimPrefix(key, "HTTP_")
	}

	parts := strings.Split(strings.ToLower(key), "_")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, "-"), true
}
