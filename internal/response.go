package internal

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/textproto"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/cookie"
)

const (
	// DefaultContentType is applied when a new Response has no Content-Type.
	DefaultContentType = "text/html"
	// DefaultCharset is appended to text content types.
	DefaultCharset = "UTF-8"
	// DefaultProtocolVersion is rendered in the status line.
	DefaultProtocolVersion = "1.1"
)

// Response is the outgoing message: a validated status, a single-value
// header map that keeps insertion order, cookie directives and content.
// It is not safe for concurrent use.
type Response struct {
	now       func() time.Time
	headers   map[string]string
	version   string
	charset   string
	defaultCT string
	order     []string
	cookies   []cookie.Cookie
	content   []byte
	status    int
	sent      bool
	noDefault bool
}

// ResponseOption configures a Response.
type ResponseOption func(*Response)

// WithClock sets the time source for Expires and Last-Modified headers.
func WithClock(now func() time.Time) ResponseOption {
	return func(r *Response) {
		if now != nil {
			r.now = now
		}
	}
}

// WithProtocolVersion sets the version rendered in the status line, e.g. "1.0".
func WithProtocolVersion(version string) ResponseOption {
	return func(r *Response) {
		if version != "" {
			r.version = version
		}
	}
}

// WithCharset sets the charset appended to the default Content-Type.
func WithCharset(charset string) ResponseOption {
	return func(r *Response) {
		if charset != "" {
			r.charset = charset
		}
	}
}

// WithDefaultContentType replaces the Content-Type added when none is set,
// e.g. "application/json".
func WithDefaultContentType(contentType string) ResponseOption {
	return func(r *Response) {
		r.defaultCT = contentType
	}
}

// WithoutDefaultContentType disables the Content-Type fallback.
func WithoutDefaultContentType() ResponseOption {
	return func(r *Response) {
		r.noDefault = true
	}
}

// NewResponse creates a Response. Supplied headers are added in name order
// so the result is deterministic. A Content-Type is added when missing and
// the status is not one that forbids a body.
func NewResponse(content string, status int, headers map[string]string, opts ...ResponseOption) (*Response, error) {
	r := &Response{
		now:     time.Now,
		headers: make(map[string]string, len(headers)+1),
		version: DefaultProtocolVersion,
		charset: DefaultCharset,
		content: []byte(content),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.SetStatusCode(status); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		r.SetHeader(name, headers[name])
	}

	if !r.noDefault && !r.HasHeader("Content-Type") {
		ct := r.defaultCT
		if ct == "" {
			ct = DefaultContentType + "; charset=" + r.charset
		}
		r.SetHeader("Content-Type", ct)
	}

	return r, nil
}

// NewJSONResponse encodes v as the response content with an application/json
// Content-Type.
func NewJSONResponse(v any, status int, opts ...ResponseOption) (*Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("foundation: encode json response: %w", err)
	}
	return NewResponse(string(data), status, map[string]string{
		"Content-Type": "application/json",
	}, opts...)
}

// NewRedirectResponse creates a redirect to url with a short HTML body.
// The status must be a 3xx code; 0 means 302 Found.
func NewRedirectResponse(url string, status int, opts ...ResponseOption) (*Response, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: empty url", ErrInvalidRedirect)
	}
	if status == 0 {
		status = http.StatusFound
	}
	if status < 300 || status > 399 {
		return nil, fmt.Errorf("%w: status %d is not a redirect", ErrInvalidRedirect, status)
	}

	escaped := htmlEscaper.Replace(url)
	body := `<!DOCTYPE html><html><head><meta charset="UTF-8"><meta http-equiv="refresh" content="0;url='` +
		escaped + `'"><title>Redirecting to ` + escaped + `</title></head><body>Redirecting to <a href="` +
		escaped + `">` + escaped + `</a>.</body></html>`

	return NewResponse(body, status, map[string]string{"Location": url}, opts...)
}

var htmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`'`, "&#39;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&#34;",
)

// SetStatusCode sets the status. Codes outside [100, 599] are rejected and
// the previous status is kept.
func (r *Response) SetStatusCode(code int) error {
	if !ValidStatusCode(code) {
		return fmt.Errorf("%w: %d", ErrInvalidStatusCode, code)
	}
	r.status = code
	return nil
}

// StatusCode returns the current status.
func (r *Response) StatusCode() int { return r.status }

// StatusText returns the reason phrase of the current status.
func (r *Response) StatusText() string { return StatusText(r.status) }

// ProtocolVersion returns the version rendered in the status line.
func (r *Response) ProtocolVersion() string { return r.version }

// Charset returns the configured charset.
func (r *Response) Charset() string { return r.charset }

// SetHeader stores value under the canonical form of name. Overwriting an
// existing header keeps its original position.
func (r *Response) SetHeader(name, value string) {
	key := textproto.CanonicalMIMEHeaderKey(name)
	if _, ok := r.headers[key]; !ok {
		r.order = append(r.order, key)
	}
	r.headers[key] = value
}

// Header returns the value of name, or "" when unset.
func (r *Response) Header(name string) string {
	return r.headers[textproto.CanonicalMIMEHeaderKey(name)]
}

// HasHeader reports whether name is set.
func (r *Response) HasHeader(name string) bool {
	_, ok := r.headers[textproto.CanonicalMIMEHeaderKey(name)]
	return ok
}

// RemoveHeader deletes name.
func (r *Response) RemoveHeader(name string) {
	key := textproto.CanonicalMIMEHeaderKey(name)
	if _, ok := r.headers[key]; !ok {
		return
	}
	delete(r.headers, key)
	r.order = slices.DeleteFunc(r.order, func(k string) bool { return k == key })
}

// Headers returns a copy of the header map.
func (r *Response) Headers() map[string]string {
	return maps.Clone(r.headers)
}

// HeaderNames returns header names in insertion order.
func (r *Response) HeaderNames() []string {
	return slices.Clone(r.order)
}

// SetContent replaces the body.
func (r *Response) SetContent(content string) {
	r.content = []byte(content)
}

// Content returns the body.
func (r *Response) Content() string {
	return string(r.content)
}

// SetCookie adds a cookie directive. A directive with the same name, path
// and domain replaces the earlier one in place.
func (r *Response) SetCookie(c cookie.Cookie) {
	for i, existing := range r.cookies {
		if existing.Name == c.Name && existing.Path == c.Path && existing.Domain == c.Domain {
			r.cookies[i] = c
			return
		}
	}
	r.cookies = append(r.cookies, c)
}

// ClearCookie adds a directive that expires the named cookie on the client.
func (r *Response) ClearCookie(name, path, domain string) {
	if path == "" {
		path = "/"
	}
	r.SetCookie(cookie.Cookie{
		Name:    name,
		Path:    path,
		Domain:  domain,
		Expires: time.Unix(0, 0).UTC(),
	})
}

// Cookies returns a copy of the cookie directives in the order they will
// be emitted.
func (r *Response) Cookies() []cookie.Cookie {
	return slices.Clone(r.cookies)
}

// IsInformational reports whether the status is in [100, 200).
func (r *Response) IsInformational() bool { return r.status >= 100 && r.status < 200 }

// IsSuccessful reports whether the status is in [200, 300).
func (r *Response) IsSuccessful() bool { return r.status >= 200 && r.status < 300 }

// IsRedirection reports whether the status is in [300, 400).
func (r *Response) IsRedirection() bool { return r.status >= 300 && r.status < 400 }

// IsClientError reports whether the status is in [400, 500).
func (r *Response) IsClientError() bool { return r.status >= 400 && r.status < 500 }

// IsServerError reports whether the status is in [500, 600).
func (r *Response) IsServerError() bool { return r.status >= 500 && r.status < 600 }

// IsOK reports whether the status is 200.
func (r *Response) IsOK() bool { return r.status == http.StatusOK }

// IsForbidden reports whether the status is 403.
func (r *Response) IsForbidden() bool { return r.status == http.StatusForbidden }

// IsNotFound reports whether the status is 404.
func (r *Response) IsNotFound() bool { return r.status == http.StatusNotFound }

// IsEmpty reports whether the status is exactly 204 or 304.
func (r *Response) IsEmpty() bool {
	return r.status == http.StatusNoContent || r.status == http.StatusNotModified
}

// IsSent reports whether Send has been called.
func (r *Response) IsSent() bool { return r.sent }

// Send emits the response through e: status, each header in insertion
// order, each cookie, the body, then Finish. It may be called once; later
// calls return ErrAlreadySent. The response counts as sent even when the
// emitter fails part way.
func (r *Response) Send(e Emitter) error {
	if r.sent {
		return ErrAlreadySent
	}
	r.sent = true

	e.SetStatus(r.status)
	for _, name := range r.order {
		e.SetHeader(name, r.headers[name])
	}
	for _, c := range r.cookies {
		e.SetCookie(c)
	}
	if err := e.WriteBody(r.content); err != nil {
		return fmt.Errorf("foundation: write body: %w", err)
	}
	if err := e.Finish(); err != nil {
		return fmt.Errorf("foundation: finish response: %w", err)
	}
	return nil
}

// String renders the response the way it goes on the wire, with headers
// and cookies in the same order Send uses.
func (r *Response) String() string {
	var b strings.Builder
	b.WriteString("HTTP/")
	b.WriteString(r.version)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(r.status))
	b.WriteByte(' ')
	b.WriteString(r.StatusText())
	b.WriteString("\r\n")
	for _, name := range r.order {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(r.headers[name])
		b.WriteString("\r\n")
	}
	for _, c := range r.cookies {
		b.WriteString("Set-Cookie: ")
		b.WriteString(c.String())
		b.WriteString("\r\n")
	}
	b.WriteString("\r\n")
	b.Write(r.content)
	return b.String()
}
