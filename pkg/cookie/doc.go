// Package cookie models Set-Cookie directives and builds them with shared
// defaults.
//
// A [Cookie] is a plain record (name, value, expiry, path, domain, secure,
// http-only, same-site). Responses keep a list of them separate from their
// header map and serialize each one at emission time:
//
//	c := cookie.Cookie{Name: "theme", Value: "dark", Path: "/", HTTPOnly: true}
//	header := c.String() // "theme=dark; Path=/; HttpOnly"
//
// # Manager
//
// [Manager] stamps directives with configured attributes:
//
//	m := cookie.New(
//		cookie.WithSecret("your-32+-byte-secret-key-here!!"),
//		cookie.WithSecure(true),
//	)
//	c := m.Cookie("theme", "dark", time.Now().Add(24*time.Hour))
//	gone := m.Clear("theme")
//
// Signed values detect tampering with HMAC-SHA256:
//
//	c, err := m.Signed("session", sessionID, time.Time{})
//	value, err := m.Verify(req.Cookies().GetString("session", ""))
//
// # Configuration
//
//   - [WithSecret]: Set the secret for signing (32+ bytes)
//   - [WithDomain]: Set the cookie domain
//   - [WithPath]: Set the cookie path (default: "/")
//   - [WithSecure]: Set the Secure flag (HTTPS only)
//   - [WithHTTPOnly]: Set the HttpOnly flag (default: true)
//   - [WithSameSite]: Set the SameSite attribute (default: Lax)
//
// # Errors
//
//   - [ErrNoSecret]: Secret required for signed operations
//   - [ErrBadSig]: Signature verification failed (tampering detected)
package cookie
