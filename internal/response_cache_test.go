package internal_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

func newCacheResponse(t *testing.T) *internal.Response {
	t.Helper()
	resp, err := internal.NewResponse("content", http.StatusOK, nil, internal.WithClock(fixedClock))
	require.NoError(t, err)
	return resp
}

func TestResponse_SetCacheHeaders(t *testing.T) {
	t.Parallel()

	t.Run("positive max age", func(t *testing.T) {
		t.Parallel()

		resp := newCacheResponse(t)
		resp.SetNoCacheHeaders()
		resp.SetCacheHeaders(3600)

		require.Equal(t, "max-age=3600, public", resp.Header("Cache-Control"))
		require.Equal(t, "Fri, 01 Mar 2024 13:00:00 GMT", resp.Header("Expires"))
		require.False(t, resp.HasHeader("Pragma"))
	})

	t.Run("zero equals no cache", func(t *testing.T) {
		t.Parallel()

		zero := newCacheResponse(t)
		zero.SetCacheHeaders(0)

		noCache := newCacheResponse(t)
		noCache.SetNoCacheHeaders()

		require.Equal(t, noCache.Headers(), zero.Headers())
		require.Equal(t, noCache.HeaderNames(), zero.HeaderNames())
		require.Equal(t, "no-cache, no-store, must-revalidate", zero.Header("Cache-Control"))
		require.Equal(t, "no-cache", zero.Header("Pragma"))
		require.Equal(t, "0", zero.Header("Expires"))
	})

	t.Run("negative equals no cache", func(t *testing.T) {
		t.Parallel()

		resp := newCacheResponse(t)
		resp.SetCacheHeaders(-5)
		require.Equal(t, "no-cache, no-store, must-revalidate", resp.Header("Cache-Control"))
	})
}

func TestResponse_Validators(t *testing.T) {
	t.Parallel()

	resp := newCacheResponse(t)

	resp.SetETag("abc", false)
	require.Equal(t, `"abc"`, resp.Header("ETag"))
	resp.SetETag(`"abc"`, true)
	require.Equal(t, `W/"abc"`, resp.Header("ETag"))
	resp.SetETag("", false)
	require.False(t, resp.HasHeader("ETag"))

	modified := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))
	resp.SetLastModified(modified)
	require.Equal(t, "Tue, 02 Jan 2024 02:04:05 GMT", resp.Header("Last-Modified"))
	resp.SetLastModified(time.Time{})
	require.False(t, resp.HasHeader("Last-Modified"))
}

func TestResponse_IsNotModified(t *testing.T) {
	t.Parallel()

	modified := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		server map[string]any
		name   string
		want   bool
	}{
		{
			name:   "matching etag",
			server: map[string]any{"REQUEST_METHOD": "GET", "HTTP_IF_NONE_MATCH": `"other", "v1"`},
			want:   true,
		},
		{
			name:   "weak comparison",
			server: map[string]any{"REQUEST_METHOD": "GET", "HTTP_IF_NONE_MATCH": `W/"v1"`},
			want:   true,
		},
		{
			name:   "wildcard",
			server: map[string]any{"REQUEST_METHOD": "HEAD", "HTTP_IF_NONE_MATCH": "*"},
			want:   true,
		},
		{
			name:   "etag mismatch",
			server: map[string]any{"REQUEST_METHOD": "GET", "HTTP_IF_NONE_MATCH": `"v2"`},
		},
		{
			name:   "not modified since",
			server: map[string]any{"REQUEST_METHOD": "GET", "HTTP_IF_MODIFIED_SINCE": modified.Format(http.TimeFormat)},
			want:   true,
		},
		{
			name:   "modified since",
			server: map[string]any{"REQUEST_METHOD": "GET", "HTTP_IF_MODIFIED_SINCE": modified.Add(-time.Hour).Format(http.TimeFormat)},
		},
		{
			name:   "unsafe method",
			server: map[string]any{"REQUEST_METHOD": "POST", "HTTP_IF_NONE_MATCH": `"v1"`},
		},
		{
			name:   "no validators",
			server: map[string]any{"REQUEST_METHOD": "GET"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resp := newCacheResponse(t)
			resp.SetETag("v1", false)
			resp.SetLastModified(modified)

			req := internal.NewRequest(internal.Snapshot{Server: tt.server})
			require.Equal(t, tt.want, resp.IsNotModified(req))

			if tt.want {
				require.Equal(t, http.StatusNotModified, resp.StatusCode())
				require.Empty(t, resp.Content())
				require.False(t, resp.HasHeader("Content-Type"))
				require.True(t, resp.HasHeader("ETag"))
			} else {
				require.Equal(t, http.StatusOK, resp.StatusCode())
				require.Equal(t, "content", resp.Content())
			}
		})
	}
}
