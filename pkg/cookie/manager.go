package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"
)

// Errors.
var (
	ErrNoSecret = errors.New("cookie: secret required")
	ErrBadSig   = errors.New("cookie: invalid signature")
)

// Manager builds cookie directives with shared defaults.
type Manager struct {
	secret   []byte // nil = no signing
	domain   string
	path     string
	secure   bool
	httpOnly bool
	sameSite http.SameSite
}

// Option configures the Manager.
type Option func(*Manager)

// New creates a cookie Manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{
		path:     "/",
		httpOnly: true,
		sameSite: http.SameSiteLaxMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithSecret sets the secret for signing.
// Must be at least 32 bytes; shorter secrets are ignored.
func WithSecret(secret string) Option {
	return func(m *Manager) {
		if len(secret) >= 32 {
			m.secret = []byte(secret)
		}
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(m *Manager) {
		m.domain = domain
	}
}

// WithPath sets the cookie path.
func WithPath(path string) Option {
	return func(m *Manager) {
		m.path = path
	}
}

// WithSecure sets the Secure flag.
func WithSecure(secure bool) Option {
	return func(m *Manager) {
		m.secure = secure
	}
}

// WithHTTPOnly sets the HttpOnly flag.
func WithHTTPOnly(httpOnly bool) Option {
	return func(m *Manager) {
		m.httpOnly = httpOnly
	}
}

// WithSameSite sets the SameSite attribute.
func WithSameSite(ss http.SameSite) Option {
	return func(m *Manager) {
		m.sameSite = ss
	}
}

// Cookie returns a directive carrying the manager's defaults.
func (m *Manager) Cookie(name, value string, expires time.Time) Cookie {
	return Cookie{
		Name:     name,
		Value:    value,
		Expires:  expires,
		Path:     m.path,
		Domain:   m.domain,
		Secure:   m.secure,
		HTTPOnly: m.httpOnly,
		SameSite: m.sameSite,
	}
}

// Clear returns a directive that removes the named cookie.
func (m *Manager) Clear(name string) Cookie {
	return m.Cookie(name, "", time.Unix(0, 0))
}

// Signed returns a directive whose value carries an HMAC-SHA256 signature.
// Returns ErrNoSecret if no secret is configured.
func (m *Manager) Signed(name, value string, expires time.Time) (Cookie, error) {
	if m.secret == nil {
		return Cookie{}, ErrNoSecret
	}

	// Format: base64(value).base64(signature)
	encoded := base64.RawURLEncoding.EncodeToString([]byte(value)) +
		"." + base64.RawURLEncoding.EncodeToString(m.sign([]byte(value)))

	return m.Cookie(name, encoded, expires), nil
}

// Verify checks a raw signed cookie value and returns the original value.
// Returns ErrNoSecret if no secret is configured.
// Returns ErrBadSig if the value was tampered with or is malformed.
func (m *Manager) Verify(raw string) (string, error) {
	if m.secret == nil {
		return "", ErrNoSecret
	}

	encValue, encSig, ok := strings.Cut(raw, ".")
	if !ok {
		return "", ErrBadSig
	}

	value, err := base64.RawURLEncoding.DecodeString(encValue)
	if err != nil {
		return "", ErrBadSig
	}

	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return "", ErrBadSig
	}

	if !hmac.Equal(sig, m.sign(value)) {
		return "", ErrBadSig
	}

	return string(value), nil
}

func (m *Manager) sign(value []byte) []byte {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write(value)
	return mac.Sum(nil)
}
