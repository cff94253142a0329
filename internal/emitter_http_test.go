package internal_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/cookie"
)

func TestHTTPEmitter(t *testing.T) {
	t.Parallel()

	t.Run("writes status headers cookies and body", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		e := internal.NewHTTPEmitter(w)

		e.SetStatus(http.StatusCreated)
		e.SetHeader("X-Test", "1")
		e.SetCookie(cookie.Cookie{Name: "a", Value: "1"})
		e.SetCookie(cookie.Cookie{Name: "b", Value: "2"})
		require.NoError(t, e.WriteBody([]byte("created")))
		require.NoError(t, e.Finish())

		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, "1", w.Header().Get("X-Test"))
		require.Equal(t, []string{"a=1", "b=2"}, w.Header().Values("Set-Cookie"))
		require.Equal(t, "created", w.Body.String())
		require.True(t, w.Flushed)

		require.Equal(t, http.StatusCreated, e.Status())
		require.Equal(t, int64(7), e.Size())
		require.True(t, e.Committed())
		require.Same(t, w, e.Unwrap())
	})

	t.Run("drops body for empty statuses", func(t *testing.T) {
		t.Parallel()

		for _, code := range []int{http.StatusNoContent, http.StatusNotModified} {
			w := httptest.NewRecorder()
			e := internal.NewHTTPEmitter(w)
			e.SetStatus(code)
			e.SetHeader("Content-Type", "text/html; charset=UTF-8")
			require.NoError(t, e.WriteBody([]byte("ignored")))

			require.Equal(t, code, w.Code)
			require.Empty(t, w.Body.String())
			require.Empty(t, w.Header().Get("Content-Type"))
			require.Zero(t, e.Size())
		}
	})

	t.Run("writes after commit are ignored", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		e := internal.NewHTTPEmitter(w)
		require.NoError(t, e.WriteBody([]byte("first")))

		e.SetStatus(http.StatusTeapot)
		e.SetHeader("X-Late", "1")
		require.ErrorIs(t, e.WriteBody([]byte("second")), internal.ErrAlreadySent)

		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, w.Header().Get("X-Late"))
		require.Equal(t, "first", w.Body.String())
	})
}

func TestResponse_SendHTTP(t *testing.T) {
	t.Parallel()

	resp, err := internal.NewResponse("<p>hi</p>", http.StatusOK, map[string]string{"X-Frame-Options": "DENY"})
	require.NoError(t, err)
	resp.SetCookie(cookie.Cookie{Name: "sid", Value: "abc", Path: "/", HTTPOnly: true, SameSite: http.SameSiteLaxMode})

	w := httptest.NewRecorder()
	require.NoError(t, resp.Send(internal.NewHTTPEmitter(w)))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	require.Equal(t, "text/html; charset=UTF-8", w.Header().Get("Content-Type"))
	require.Equal(t, "sid=abc; Path=/; HttpOnly; SameSite=Lax", w.Header().Get("Set-Cookie"))
	require.Equal(t, "<p>hi</p>", w.Body.String())
}
