package internal

import (
	"net/http"
	"slices"
	"strings"
)

// MethodOverrideField is the body field that simulates another HTTP verb.
const MethodOverrideField = "_method"

var (
	safeMethods       = []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace}
	idempotentMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace, http.MethodPut, http.MethodDelete}
	cacheableMethods  = []string{http.MethodGet, http.MethodHead}
)

// Method returns the effective HTTP verb, upper-cased.
// The _method body field wins over X-HTTP-Method-Override, which wins over
// the transport method.
func (r *Request) Method() string {
	if r.cfg.methodOverride {
		if v := strings.TrimSpace(r.body.GetString(MethodOverrideField, "")); v != "" {
			return strings.ToUpper(v)
		}
		if v, ok := r.serverValue("HTTP_X_HTTP_METHOD_OVERRIDE"); ok {
			return strings.ToUpper(strings.TrimSpace(v))
		}
	}
	return r.RealMethod()
}

// RealMethod returns the verb sent on the wire, ignoring overrides.
func (r *Request) RealMethod() string {
	if v, ok := r.serverValue("REQUEST_METHOD"); ok {
		return strings.ToUpper(strings.TrimSpace(v))
	}
	return http.MethodGet
}

// IsMethod reports whether the effective method equals method, ignoring case.
func (r *Request) IsMethod(method string) bool {
	return strings.EqualFold(r.Method(), method)
}

// IsMethodSafe reports whether the effective method is read-only (RFC 9110 9.2.1).
func (r *Request) IsMethodSafe() bool {
	return slices.Contains(safeMethods, r.Method())
}

// IsMethodIdempotent reports whether repeating the request has no extra effect.
func (r *Request) IsMethodIdempotent() bool {
	return slices.Contains(idempotentMethods, r.Method())
}

// IsMethodCacheable reports whether responses to the method may be cached.
func (r *Request) IsMethodCacheable() bool {
	return slices.Contains(cacheableMethods, r.Method())
}
