package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

// newRequest builds a Request the way the Handler does for r.
func newRequest(t *testing.T, r *http.Request) *internal.Request {
	t.Helper()
	s, err := internal.SnapshotFromHTTP(r)
	require.NoError(t, err)
	return internal.NewRequest(s).WithContext(r.Context())
}

// ok is a HandlerFunc that answers 200 with body "ok".
func ok(*internal.Request) (*internal.Response, error) {
	return internal.NewResponse("ok", http.StatusOK, nil)
}

// get is shorthand for a GET request Snapshot-converted into a Request.
func get(t *testing.T, target string, headers map[string]string) *internal.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return newRequest(t, r)
}
