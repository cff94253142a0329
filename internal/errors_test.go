package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

func TestIsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		err := internal.NewHTTPError(http.StatusNotFound, "not found")
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.NewHTTPError(http.StatusBadRequest, "bad request")
		err := fmt.Errorf("handler failed: %w", httpErr)
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("double-wrapped HTTPError", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.NewHTTPError(http.StatusConflict, "conflict")
		err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", httpErr))
		require.True(t, internal.IsHTTPError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		err := errors.New("something went wrong")
		require.False(t, internal.IsHTTPError(err))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.False(t, internal.IsHTTPError(nil))
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()
		httpErr := internal.NewHTTPError(http.StatusNotFound, "not found")
		got := internal.AsHTTPError(httpErr)
		require.NotNil(t, got)
		require.Equal(t, http.StatusNotFound, got.Code)
		require.Equal(t, "not found", got.Message)
	})

	t.Run("wrapped HTTPError preserves fields", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("row missing")
		httpErr := internal.ErrForbidden("forbidden", internal.WithCause(cause))
		err := fmt.Errorf("middleware: %w", httpErr)

		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusForbidden, got.StatusCode())
		require.Equal(t, "forbidden", got.Error())
		require.Equal(t, "Forbidden", got.StatusText())
		require.ErrorIs(t, err, cause)
	})

	t.Run("unrelated error returns nil", func(t *testing.T) {
		t.Parallel()
		err := errors.New("plain error")
		require.Nil(t, internal.AsHTTPError(err))
	})

	t.Run("nil returns nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestNewHTTPError_DefaultMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *internal.HTTPError
		want string
		code int
	}{
		{internal.ErrBadRequest(""), "Bad Request", http.StatusBadRequest},
		{internal.ErrNotFound(""), "Not Found", http.StatusNotFound},
		{internal.ErrMethodNotAllowed(""), "Method Not Allowed", http.StatusMethodNotAllowed},
		{internal.ErrInternal("custom"), "custom", http.StatusInternalServerError},
		{internal.NewHTTPError(799, ""), "Unknown Status", 799},
	}

	for _, tt := range tests {
		require.Equal(t, tt.code, tt.err.Code)
		require.Equal(t, tt.want, tt.err.Message)
	}
}

func TestStatusText(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		100: "Continue",
		200: "OK",
		204: "No Content",
		304: "Not Modified",
		404: "Not Found",
		413: "Payload Too Large",
		418: "I'm a teapot",
		422: "Unprocessable Entity",
		451: "Unavailable For Legal Reasons",
		500: "Internal Server Error",
		511: "Network Authentication Required",
		0:   "Unknown Status",
		299: "Unknown Status",
		600: "Unknown Status",
	}
	for code, want := range tests {
		require.Equal(t, want, internal.StatusText(code), "code %d", code)
	}

	require.True(t, internal.ValidStatusCode(100))
	require.True(t, internal.ValidStatusCode(599))
	require.False(t, internal.ValidStatusCode(99))
	require.False(t, internal.ValidStatusCode(600))
}
