package internal

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultMaxMemory is the multipart memory budget used by SnapshotFromHTTP.
const DefaultMaxMemory int64 = 32 << 20

type snapshotConfig struct {
	maxMemory int64
	maxBody   int64
}

// SnapshotOption configures SnapshotFromHTTP.
type SnapshotOption func(*snapshotConfig)

// WithMaxMemory sets the bytes of a multipart form kept in memory.
// The rest is stored in temporary files.
func WithMaxMemory(n int64) SnapshotOption {
	return func(c *snapshotConfig) {
		if n > 0 {
			c.maxMemory = n
		}
	}
}

// WithMaxBodyBytes caps form bodies read while building the snapshot.
// Zero disables the cap.
func WithMaxBodyBytes(n int64) SnapshotOption {
	return func(c *snapshotConfig) {
		c.maxBody = n
	}
}

// SnapshotFromHTTP converts r into a Snapshot.
// URL-encoded and multipart bodies are parsed into Body and Files; any
// other body is left unread as Content.
func SnapshotFromHTTP(r *http.Request, opts ...SnapshotOption) (Snapshot, error) {
	cfg := snapshotConfig{maxMemory: DefaultMaxMemory}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := Snapshot{
		Query:      formValues(r.URL.Query()),
		Body:       map[string]any{},
		Attributes: map[string]any{},
		Cookies:    map[string]any{},
		Files:      map[string]any{},
		Server:     serverVars(r),
		Content:    r.Body,
	}

	for _, c := range r.Cookies() {
		if _, ok := s.Cookies[c.Name]; !ok {
			s.Cookies[c.Name] = c.Value
		}
	}

	if r.Body == nil || r.Body == http.NoBody {
		s.Content = nil
		return s, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		var src io.Reader = r.Body
		if cfg.maxBody > 0 {
			src = io.LimitReader(r.Body, cfg.maxBody+1)
		}
		raw, err := io.ReadAll(src)
		if err != nil {
			return Snapshot{}, fmt.Errorf("foundation: read form body: %w", err)
		}
		if cfg.maxBody > 0 && int64(len(raw)) > cfg.maxBody {
			return Snapshot{}, fmt.Errorf("%w: limit %d bytes", ErrContentTooLarge, cfg.maxBody)
		}
		values, err := url.ParseQuery(string(raw))
		if err != nil {
			return Snapshot{}, fmt.Errorf("foundation: parse form body: %w", err)
		}
		s.Body = formValues(values)
		s.Content = bytes.NewReader(raw)

	case "multipart/form-data":
		if err := r.ParseMultipartForm(cfg.maxMemory); err != nil {
			return Snapshot{}, fmt.Errorf("foundation: parse multipart body: %w", err)
		}
		s.Body = formValues(r.MultipartForm.Value)
		for key, headers := range r.MultipartForm.File {
			name, many := strings.CutSuffix(key, "[]")
			if len(headers) == 1 && !many {
				s.Files[name] = headers[0]
				continue
			}
			s.Files[name] = headers
		}
		s.Content = nil
	}

	return s, nil
}

// formValues flattens url.Values: single values become strings, repeated
// values and "name[]" keys become []string under the bare name.
func formValues(values url.Values) map[string]any {
	out := make(map[string]any, len(values))
	for key, vs := range values {
		if name, ok := strings.CutSuffix(key, "[]"); ok {
			out[name] = append([]string(nil), vs...)
			continue
		}
		if len(vs) == 1 {
			out[key] = vs[0]
			continue
		}
		out[key] = append([]string(nil), vs...)
	}
	return out
}

// serverVars builds CGI-style server variables from r.
func serverVars(r *http.Request) map[string]any {
	vars := map[string]any{
		"REQUEST_METHOD":  r.Method,
		"REQUEST_URI":     r.URL.RequestURI(),
		"QUERY_STRING":    r.URL.RawQuery,
		"SERVER_PROTOCOL": r.Proto,
	}
	// Proxy-style requests carry an absolute target; keep the origin form.
	if strings.HasPrefix(r.RequestURI, "/") {
		vars["REQUEST_URI"] = r.RequestURI
	}

	if r.Host != "" {
		vars["HTTP_HOST"] = r.Host
		host, _, err := net.SplitHostPort(r.Host)
		if err != nil {
			host = r.Host
		}
		vars["SERVER_NAME"] = host
	}

	if addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr); ok {
		if host, port, err := net.SplitHostPort(addr.String()); err == nil {
			vars["SERVER_ADDR"] = host
			vars["SERVER_PORT"] = port
		}
	}
	if _, ok := vars["SERVER_PORT"]; !ok {
		if r.TLS != nil {
			vars["SERVER_PORT"] = "443"
		} else {
			vars["SERVER_PORT"] = "80"
		}
	}

	if r.RemoteAddr != "" {
		if host, port, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			vars["REMOTE_ADDR"] = host
			vars["REMOTE_PORT"] = port
		} else {
			vars["REMOTE_ADDR"] = r.RemoteAddr
		}
	}

	if r.TLS != nil {
		vars["HTTPS"] = "on"
	}

	for name, values := range r.Header {
		vars[serverKey(name)] = strings.Join(values, ", ")
	}
	if r.ContentLength > 0 {
		vars["CONTENT_LENGTH"] = strconv.FormatInt(r.ContentLength, 10)
	}

	return vars
}
