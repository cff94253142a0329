package internal

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/hostport"
)

// RequestURI returns the raw request target including the query string.
func (r *Request) RequestURI() string {
	if v, ok := r.serverValue("REQUEST_URI"); ok {
		return v
	}
	return "/"
}

// PathInfo returns the percent-decoded path of the request URI without the
// query string. Defaults to "/".
func (r *Request) PathInfo() string {
	path, _, _ := strings.Cut(r.RequestURI(), "?")
	if decoded, err := url.PathUnescape(path); err == nil {
		path = decoded
	}
	if path == "" {
		return "/"
	}
	return path
}

// QueryString returns the raw query string without the leading "?".
func (r *Request) QueryString() string {
	if v, ok := r.serverValue("QUERY_STRING"); ok {
		return v
	}
	_, qs, _ := strings.Cut(r.RequestURI(), "?")
	return qs
}

// IsSecure reports whether the request arrived over HTTPS.
func (r *Request) IsSecure() bool {
	v, ok := r.serverValue("HTTPS")
	return ok && !strings.EqualFold(v, "off")
}

// Scheme returns "https" for secure requests, "http" otherwise.
func (r *Request) Scheme() string {
	if r.IsSecure() {
		return "https"
	}
	return "http"
}

// Host returns the lowercase host name without port.
// X-Forwarded-Host wins over Host, which wins over SERVER_NAME.
func (r *Request) Host() string {
	raw, _ := r.rawHost()
	return hostport.Host(raw)
}

// Port returns the port the client connected to.
// The port suffix of the Host header wins over SERVER_PORT; the default is 80.
// With WithForwardedPort, a request carrying X-Forwarded-Host takes its port
// from that header's suffix, then X-Forwarded-Port, then the scheme default.
func (r *Request) Port() int {
	if raw, forwarded := r.rawHost(); forwarded && r.cfg.forwardedPort {
		return r.forwardedPort(raw)
	}

	if v, ok := r.serverValue("HTTP_HOST"); ok {
		if port, ok := hostport.Port(strings.TrimSpace(v)); ok {
			return port
		}
	}
	if port, ok := r.serverPort("SERVER_PORT"); ok {
		return port
	}
	return 80
}

func (r *Request) forwardedPort(raw string) int {
	if port, ok := hostport.Port(raw); ok {
		return port
	}
	if port, ok := r.serverPort("HTTP_X_FORWARDED_PORT"); ok {
		return port
	}
	if r.IsSecure() {
		return 443
	}
	return 80
}

func (r *Request) serverPort(key string) (int, bool) {
	v, ok := r.serverValue(key)
	if !ok {
		return 0, false
	}
	port, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return port, true
}

// HTTPHost returns the host with the port appended when it is not the
// scheme's default.
func (r *Request) HTTPHost() string {
	host := r.Host()
	port := r.Port()
	if hostport.IsDefaultPort(r.Scheme(), port) {
		return host
	}
	return host + ":" + strconv.Itoa(port)
}

// SchemeAndHTTPHost returns e.g. "https://example.com:8443".
func (r *Request) SchemeAndHTTPHost() string {
	return r.Scheme() + "://" + r.HTTPHost()
}

// URI reconstructs the absolute request URI.
func (r *Request) URI() string {
	return r.SchemeAndHTTPHost() + r.RequestURI()
}

// rawHost returns the first non-empty host source and whether it came from
// X-Forwarded-Host. A forwarded host list contributes its first entry.
func (r *Request) rawHost() (string, bool) {
	if v, ok := r.serverValue("HTTP_X_FORWARDED_HOST"); ok {
		first, _, _ := strings.Cut(v, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first, true
		}
	}
	for _, key := range []string{"HTTP_HOST", "SERVER_NAME"} {
		if v, ok := r.serverValue(key); ok {
			return strings.TrimSpace(v), false
		}
	}
	return "", false
}
