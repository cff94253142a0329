package cookie

import (
	"net/http"
	"time"
)

// Cookie is a single Set-Cookie directive.
// A zero Expires produces a session cookie.
type Cookie struct {
	Expires  time.Time
	Name     string
	Value    string
	Path     string
	Domain   string
	SameSite http.SameSite
	Secure   bool
	HTTPOnly bool
}

// HTTP converts the directive to a net/http cookie.
func (c Cookie) HTTP() *http.Cookie {
	hc := &http.Cookie{
		Name:     c.Name,
		Value:    c.Value,
		Path:     c.Path,
		Domain:   c.Domain,
		Secure:   c.Secure,
		HttpOnly: c.HTTPOnly,
		SameSite: c.SameSite,
	}
	if !c.Expires.IsZero() {
		hc.Expires = c.Expires.UTC()
		if !c.Expires.After(time.Unix(0, 0)) {
			// Epoch or earlier: ask the client to drop the cookie.
			hc.MaxAge = -1
		}
	}
	return hc
}

// String serializes the directive as a Set-Cookie header value.
// Returns an empty string if the name is invalid.
func (c Cookie) String() string {
	return c.HTTP().String()
}

// IsCleared reports whether the directive expires the cookie immediately.
func (c Cookie) IsCleared() bool {
	return !c.Expires.IsZero() && !c.Expires.After(time.Unix(0, 0))
}
