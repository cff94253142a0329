package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
	"github.com/UNGVSN/symfony-educational-project-sub002/middlewares"
)

func preflight(t *testing.T, origin string) *internal.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodOptions, "/api", nil)
	r.Header.Set("Origin", origin)
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	return newRequest(t, r)
}

func TestCORS(t *testing.T) {
	t.Parallel()

	t.Run("no origin passes through untouched", func(t *testing.T) {
		t.Parallel()

		resp, err := middlewares.CORS()(ok)(get(t, "/", nil))
		require.NoError(t, err)
		require.False(t, resp.HasHeader("Access-Control-Allow-Origin"))
		require.False(t, resp.HasHeader("Vary"))
	})

	t.Run("wildcard origin on actual request", func(t *testing.T) {
		t.Parallel()

		resp, err := middlewares.CORS()(ok)(get(t, "/", map[string]string{"Origin": "https://a.example"}))
		require.NoError(t, err)
		require.Equal(t, "*", resp.Header("Access-Control-Allow-Origin"))
		require.Equal(t, "Origin", resp.Header("Vary"))
		require.Equal(t, "ok", resp.Content())
	})

	t.Run("specific origins are echoed", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(middlewares.WithAllowOrigins("https://a.example"))
		resp, err := mw(ok)(get(t, "/", map[string]string{"Origin": "https://a.example"}))
		require.NoError(t, err)
		require.Equal(t, "https://a.example", resp.Header("Access-Control-Allow-Origin"))
	})

	t.Run("disallowed origin gets no headers", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(middlewares.WithAllowOrigins("https://a.example"))
		resp, err := mw(ok)(get(t, "/", map[string]string{"Origin": "https://evil.example"}))
		require.NoError(t, err)
		require.False(t, resp.HasHeader("Access-Control-Allow-Origin"))
	})

	t.Run("origin func overrides list", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(
			middlewares.WithAllowOrigins("https://a.example"),
			middlewares.WithAllowOriginFunc(func(o string) bool { return strings.HasSuffix(o, ".trusted.example") }),
		)
		resp, err := mw(ok)(get(t, "/", map[string]string{"Origin": "https://app.trusted.example"}))
		require.NoError(t, err)
		require.Equal(t, "https://app.trusted.example", resp.Header("Access-Control-Allow-Origin"))

		resp, err = mw(ok)(get(t, "/", map[string]string{"Origin": "https://a.example"}))
		require.NoError(t, err)
		require.False(t, resp.HasHeader("Access-Control-Allow-Origin"))
	})

	t.Run("credentials echo origin with wildcard", func(t *testing.T) {
		t.Parallel()

		mw := middlewares.CORS(middlewares.WithAllowCredentials(), middlewares.WithExposeHeaders("X-Total", "X-Page"))
		resp, err := mw(ok)(get(t, "/", map[string]string{"Origin": "https://a.example"}))
		require.NoError(t, err)
		require.Equal(t, "https://a.example", resp.Header("Access-Control-Allow-Origin"))
		require.Equal(t, "true", resp.Header("Access-Control-Allow-Credentials"))
		require.Equal(t, "X-Total, X-Page", resp.Header("Access-Control-Expose-Headers"))
	})

	t.Run("existing vary is extended once", func(t *testing.T) {
		t.Parallel()

		next := func(*internal.Request) (*internal.Response, error) {
			return internal.NewResponse("", http.StatusOK, map[string]string{"Vary": "Accept-Encoding"})
		}
		resp, err := middlewares.CORS()(next)(get(t, "/", map[string]string{"Origin": "https://a.example"}))
		require.NoError(t, err)
		require.Equal(t, "Accept-Encoding, Origin", resp.Header("Vary"))

		next = func(*internal.Request) (*internal.Response, error) {
			return internal.NewResponse("", http.StatusOK, map[string]string{"Vary": "origin"})
		}
		resp, err = middlewares.CORS()(next)(get(t, "/", map[string]string{"Origin": "https://a.example"}))
		require.NoError(t, err)
		require.Equal(t, "origin", resp.Header("Vary"))
	})

	t.Run("preflight is answered without calling next", func(t *testing.T) {
		t.Parallel()

		called := false
		mw := middlewares.CORS(
			middlewares.WithAllowMethods(http.MethodGet, http.MethodPost),
			middlewares.WithAllowHeaders("Content-Type"),
			middlewares.WithMaxAge(time.Hour),
		)
		resp, err := mw(func(*internal.Request) (*internal.Response, error) {
			called = true
			return nil, nil
		})(preflight(t, "https://a.example"))

		require.NoError(t, err)
		require.False(t, called)
		require.Equal(t, http.StatusNoContent, resp.StatusCode())
		require.Equal(t, "*", resp.Header("Access-Control-Allow-Origin"))
		require.Equal(t, "GET, POST", resp.Header("Access-Control-Allow-Methods"))
		require.Equal(t, "Content-Type", resp.Header("Access-Control-Allow-Headers"))
		require.Equal(t, "3600", resp.Header("Access-Control-Max-Age"))
		require.Contains(t, resp.Header("Vary"), "Access-Control-Request-Method")
	})

	t.Run("zero max age omits header", func(t *testing.T) {
		t.Parallel()

		resp, err := middlewares.CORS(middlewares.WithMaxAge(0))(ok)(preflight(t, "https://a.example"))
		require.NoError(t, err)
		require.False(t, resp.HasHeader("Access-Control-Max-Age"))
	})

	t.Run("plain options request reaches next", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodOptions, "/", nil)
		r.Header.Set("Origin", "https://a.example")
		resp, err := middlewares.CORS()(ok)(newRequest(t, r))
		require.NoError(t, err)
		require.Equal(t, "ok", resp.Content())
		require.Equal(t, "*", resp.Header("Access-Control-Allow-Origin"))
	})
}
