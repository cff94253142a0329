package middlewares

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

// DefaultCORSMaxAge is the default preflight cache duration.
const DefaultCORSMaxAge = 12 * time.Hour

// DefaultCORSConfig provides sensible defaults for CORS.
var DefaultCORSConfig = CORSConfig{
	AllowOrigins: []string{"*"},
	AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
	AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	MaxAge:       DefaultCORSMaxAge,
}

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigins is a static list of allowed origins.
	// Use "*" to allow all origins (not recommended with credentials).
	AllowOrigins []string

	// AllowOriginFunc is a dynamic origin validator.
	// When set, it completely overrides AllowOrigins for that request.
	// Return true if the origin should be allowed.
	AllowOriginFunc func(origin string) bool

	// AllowMethods specifies the allowed HTTP methods.
	AllowMethods []string

	// AllowHeaders specifies the allowed request headers.
	AllowHeaders []string

	// ExposeHeaders specifies headers exposed to the client.
	ExposeHeaders []string

	// AllowCredentials indicates whether credentials (cookies, authorization headers) are allowed.
	// When true, Access-Control-Allow-Origin cannot be "*"; the actual origin is echoed.
	AllowCredentials bool

	// MaxAge specifies how long preflight responses can be cached.
	MaxAge time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the allowed origins.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOrigins = origins
	}
}

// WithAllowOriginFunc sets a dynamic origin validator.
// When set, it completely overrides AllowOrigins.
func WithAllowOriginFunc(fn func(origin string) bool) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOriginFunc = fn
	}
}

// WithAllowMethods sets the allowed HTTP methods.
func WithAllowMethods(methods ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowMethods = methods
	}
}

// WithAllowHeaders sets the allowed request headers.
func WithAllowHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowHeaders = headers
	}
}

// WithExposeHeaders sets the headers exposed to the client.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.ExposeHeaders = headers
	}
}

// WithAllowCredentials enables credentials support.
// When enabled, Access-Control-Allow-Origin echoes the actual origin instead of "*".
func WithAllowCredentials() CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowCredentials = true
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(duration time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = duration
	}
}

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// It answers preflight (OPTIONS) requests itself and adds CORS headers to
// responses returned by the next handler. Error responses built by the
// ErrorHandler carry no CORS headers.
func CORS(opts ...CORSOption) internal.Middleware {
	cfg := &CORSConfig{
		AllowOrigins: DefaultCORSConfig.AllowOrigins,
		AllowMethods: DefaultCORSConfig.AllowMethods,
		AllowHeaders: DefaultCORSConfig.AllowHeaders,
		MaxAge:       DefaultCORSConfig.MaxAge,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// Pre-compute joined strings for headers
	allowMethodsStr := strings.Join(cfg.AllowMethods, ", ")
	allowHeadersStr := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeadersStr := strings.Join(cfg.ExposeHeaders, ", ")
	maxAgeStr := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	// Check if wildcard is in allow origins
	hasWildcard := slices.Contains(cfg.AllowOrigins, "*")

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(r *internal.Request) (*internal.Response, error) {
			origin := r.Header("Origin")

			// Not a CORS request: continue without adding headers
			if origin == "" {
				return next(r)
			}

			// Origin not allowed: continue without CORS headers (browser will block)
			if !isOriginAllowed(origin, cfg, hasWildcard) {
				return next(r)
			}

			if r.RealMethod() == http.MethodOptions && r.HasHeader("Access-Control-Request-Method") {
				resp, err := internal.NewResponse("", http.StatusNoContent, nil)
				if err != nil {
					return nil, err
				}
				setOriginHeaders(resp, origin, cfg, hasWildcard, exposeHeadersStr)
				resp.SetHeader("Vary", "Origin, Access-Control-Request-Method, Access-Control-Request-Headers")
				resp.SetHeader("Access-Control-Allow-Methods", allowMethodsStr)
				resp.SetHeader("Access-Control-Allow-Headers", allowHeadersStr)
				if cfg.MaxAge > 0 {
					resp.SetHeader("Access-Control-Max-Age", maxAgeStr)
				}
				return resp, nil
			}

			resp, err := next(r)
			if resp != nil {
				setOriginHeaders(resp, origin, cfg, hasWildcard, exposeHeadersStr)
				resp.SetHeader("Vary", appendVary(resp.Header("Vary"), "Origin"))
			}
			return resp, err
		}
	}
}

// setOriginHeaders writes the headers shared by preflight and actual responses.
func setOriginHeaders(resp *internal.Response, origin string, cfg *CORSConfig, hasWildcard bool, expose string) {
	// When credentials are enabled or specific origins are configured, echo the actual origin
	if cfg.AllowCredentials || !hasWildcard {
		resp.SetHeader("Access-Control-Allow-Origin", origin)
	} else {
		resp.SetHeader("Access-Control-Allow-Origin", "*")
	}

	if cfg.AllowCredentials {
		resp.SetHeader("Access-Control-Allow-Credentials", "true")
	}

	if expose != "" {
		resp.SetHeader("Access-Control-Expose-Headers", expose)
	}
}

// appendVary adds value to a Vary header list unless already present.
// The header map holds one value per name, so entries are comma-joined.
func appendVary(current, value string) string {
	if current == "" {
		return value
	}
	for v := range strings.SplitSeq(current, ",") {
		if strings.EqualFold(strings.TrimSpace(v), value) {
			return current
		}
	}
	return current + ", " + value
}

// isOriginAllowed checks if the given origin is allowed based on configuration.
func isOriginAllowed(origin string, cfg *CORSConfig, hasWildcard bool) bool {
	// AllowOriginFunc completely overrides AllowOrigins when set
	if cfg.AllowOriginFunc != nil {
		return cfg.AllowOriginFunc(origin)
	}

	// Wildcard allows all
	if hasWildcard {
		return true
	}

	// Check static list
	return slices.Contains(cfg.AllowOrigins, origin)
}
