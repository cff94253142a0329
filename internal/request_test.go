package internal_test

import (
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

func TestRequest_Get(t *testing.T) {
	t.Parallel()

	req := internal.NewRequest(internal.Snapshot{
		Query:      map[string]any{"id": "q", "page": "2"},
		Body:       map[string]any{"id": "b", "name": "alice"},
		Attributes: map[string]any{"id": "a"},
	})

	require.Equal(t, "a", req.Get("id", nil))
	require.Equal(t, "2", req.Get("page", nil))
	require.Equal(t, "alice", req.Get("name", nil))
	require.Equal(t, "fallback", req.Get("missing", "fallback"))
}

func TestRequest_BagsAreCopies(t *testing.T) {
	t.Parallel()

	query := map[string]any{"a": "1"}
	req := internal.NewRequest(internal.Snapshot{Query: query})
	req.Query().Set("a", "2")

	require.Equal(t, "1", query["a"])
	require.Equal(t, 2, req.Query().GetInt("a", 0))
}

func TestRequest_Content(t *testing.T) {
	t.Parallel()

	t.Run("read once", func(t *testing.T) {
		t.Parallel()

		src := &countingReader{r: strings.NewReader("payload")}
		req := internal.NewRequest(internal.Snapshot{Content: src})

		first, err := req.Content()
		require.NoError(t, err)
		reads := src.reads

		second, err := req.Content()
		require.NoError(t, err)
		require.Equal(t, "payload", string(first))
		require.Equal(t, first, second)
		require.Equal(t, reads, src.reads)
	})

	t.Run("no body", func(t *testing.T) {
		t.Parallel()

		req := internal.NewRequest(internal.Snapshot{})
		data, err := req.Content()
		require.NoError(t, err)
		require.Empty(t, data)
	})

	t.Run("read failure is memoized", func(t *testing.T) {
		t.Parallel()

		req := internal.NewRequest(internal.Snapshot{Content: failingReader{}})
		_, err := req.Content()
		require.Error(t, err)
		_, again := req.Content()
		require.Equal(t, err, again)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		req := internal.NewRequest(
			internal.Snapshot{Content: strings.NewReader("0123456789")},
			internal.WithMaxContentBytes(4),
		)
		_, err := req.Content()
		require.ErrorIs(t, err, internal.ErrContentTooLarge)
	})

	t.Run("exactly at limit", func(t *testing.T) {
		t.Parallel()

		req := internal.NewRequest(
			internal.Snapshot{Content: strings.NewReader("0123")},
			internal.WithMaxContentBytes(4),
		)
		data, err := req.Content()
		require.NoError(t, err)
		require.Equal(t, "0123", string(data))
	})
}

func TestRequest_JSONContent(t *testing.T) {
	t.Parallel()

	t.Run("parsed once", func(t *testing.T) {
		t.Parallel()

		src := &countingReader{r: strings.NewReader(`{"a":1}`)}
		req := internal.NewRequest(internal.Snapshot{Content: src})

		first, err := req.JSONContent()
		require.NoError(t, err)
		reads := src.reads

		second, err := req.JSONContent()
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": float64(1)}, first)
		require.Equal(t, first, second)
		require.Equal(t, reads, src.reads)
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"malformed", `{"a":`},
		{"array", `[1,2]`},
		{"scalar", `"text"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := internal.NewRequest(internal.Snapshot{Content: strings.NewReader(tt.body)})
			decoded, err := req.JSONContent()
			require.NoError(t, err)
			require.Nil(t, decoded)
		})
	}

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()

		req := internal.NewRequest(internal.Snapshot{Content: failingReader{}})
		_, err := req.JSONContent()
		require.Error(t, err)
	})
}

func TestRequest_All(t *testing.T) {
	t.Parallel()

	t.Run("merges json body", func(t *testing.T) {
		t.Parallel()

		req := internal.NewRequest(internal.Snapshot{
			Query:   map[string]any{"a": "query", "q": "1"},
			Body:    map[string]any{"b": "form"},
			Server:  map[string]any{"CONTENT_TYPE": "application/json; charset=utf-8"},
			Content: strings.NewReader(`{"a":"json"}`),
		})

		all, err := req.All()
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": "json", "q": "1", "b": "form"}, all)
	})

	t.Run("ignores body of other types", func(t *testing.T) {
		t.Parallel()

		src := &countingReader{r: strings.NewReader(`{"a":"json"}`)}
		req := internal.NewRequest(internal.Snapshot{
			Query:   map[string]any{"a": "query"},
			Server:  map[string]any{"CONTENT_TYPE": "text/plain"},
			Content: src,
		})

		all, err := req.All()
		require.NoError(t, err)
		require.Equal(t, map[string]any{"a": "query"}, all)
		require.Zero(t, src.reads)
	})
}

func TestRequest_Headers(t *testing.T) {
	t.Parallel()

	req := internal.NewRequest(internal.Snapshot{
		Server: map[string]any{
			"HTTP_X_REQUESTED_WITH": "XMLHttpRequest",
			"HTTP_HX_REQUEST":       "true",
			"HTTP_ACCEPT":           "text/html",
			"CONTENT_TYPE":          "application/x-www-form-urlencoded",
			"REQUEST_METHOD":        "GET",
		},
	})

	assert.Equal(t, "XMLHttpRequest", req.Header("x-requested-with"))
	assert.True(t, req.HasHeader("Accept"))
	assert.False(t, req.HasHeader("Authorization"))
	assert.True(t, req.IsXMLHTTPRequest())
	assert.True(t, req.IsHTMX())

	ct, ok := req.ContentType()
	assert.True(t, ok)
	assert.Equal(t, "application/x-www-form-urlencoded", ct)
	assert.False(t, req.IsJSON())

	assert.Equal(t, map[string]string{
		"X-Requested-With": "XMLHttpRequest",
		"Hx-Request":       "true",
		"Accept":           "text/html",
		"Content-Type":     "application/x-www-form-urlencoded",
	}, req.Headers())
}

func TestRequest_ClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		server map[string]any
		opts   []internal.RequestOption
		want   string
		found  bool
	}{
		{
			name:   "first forwarded entry",
			server: map[string]any{"HTTP_X_FORWARDED_FOR": "203.0.113.5, 10.0.0.1", "REMOTE_ADDR": "10.0.0.1"},
			want:   "203.0.113.5",
			found:  true,
		},
		{
			name:   "private remote only",
			server: map[string]any{"REMOTE_ADDR": "192.168.1.10"},
		},
		{
			name:   "public remote",
			server: map[string]any{"REMOTE_ADDR": "8.8.8.8"},
			want:   "8.8.8.8",
			found:  true,
		},
		{
			name:   "custom candidates ignore proxies",
			server: map[string]any{"HTTP_X_FORWARDED_FOR": "203.0.113.5", "REMOTE_ADDR": "198.51.100.1"},
			opts:   []internal.RequestOption{internal.WithClientIPHeaders("REMOTE_ADDR")},
			want:   "198.51.100.1",
			found:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := internal.NewRequest(internal.Snapshot{Server: tt.server}, tt.opts...)
			ip, ok := req.ClientIP()
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.want, ip)
		})
	}
}

func TestRequest_Locale(t *testing.T) {
	t.Parallel()

	req := internal.NewRequest(internal.Snapshot{}, internal.WithDefaultLocale("fr"))
	require.Equal(t, "fr", req.Locale())

	req.SetLocale("de")
	require.Equal(t, "de", req.Locale())
	require.Equal(t, "de", req.Attributes().GetString(internal.AttrLocale, ""))
}

func TestRequest_File(t *testing.T) {
	t.Parallel()

	single := &multipart.FileHeader{Filename: "a.txt"}
	many := []*multipart.FileHeader{{Filename: "b.txt"}, {Filename: "c.txt"}}

	req := internal.NewRequest(internal.Snapshot{
		Files: map[string]any{"avatar": single, "docs": many, "bogus": "x"},
	})

	f, ok := req.File("avatar")
	require.True(t, ok)
	require.Equal(t, "a.txt", f.Filename)

	f, ok = req.File("docs")
	require.True(t, ok)
	require.Equal(t, "b.txt", f.Filename)

	_, ok = req.File("bogus")
	require.False(t, ok)
	_, ok = req.File("missing")
	require.False(t, ok)
}
