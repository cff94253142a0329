package internal_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
	"github.com/UNGVSN/symfony-educational-project-sub002/pkg/logger"
)

func TestRequestFromContext(t *testing.T) {
	t.Parallel()

	_, ok := internal.RequestFromContext(context.Background())
	require.False(t, ok)
	require.Empty(t, internal.RequestIDFromContext(context.Background()))

	req := internal.NewRequest(internal.Snapshot{Attributes: map[string]any{internal.AttrRequestID: "id-1"}})
	ctx := internal.WithRequest(context.Background(), req)

	got, ok := internal.RequestFromContext(ctx)
	require.True(t, ok)
	require.Same(t, req, got)
	require.Equal(t, "id-1", internal.RequestIDFromContext(ctx))
}

func TestRequestExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithExtractors(internal.RequestExtractor()),
	)

	h := internal.NewHandler(func(r *internal.Request) (*internal.Response, error) {
		log.InfoContext(r.Context(), "handled")
		return internal.NewResponse("", http.StatusOK, nil)
	}, internal.WithRequestIDGenerator(func() string { return "abc" }))

	req := httptest.NewRequest(http.MethodPost, "/orders?x=1", nil)
	req.RemoteAddr = "203.0.113.20:1234"
	h.ServeHTTP(httptest.NewRecorder(), req)

	var record struct {
		Msg     string `json:"msg"`
		Request struct {
			ID       string `json:"request_id"`
			Method   string `json:"method"`
			Path     string `json:"path"`
			ClientIP string `json:"client_ip"`
		} `json:"request"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "handled", record.Msg)
	require.Equal(t, "abc", record.Request.ID)
	require.Equal(t, http.MethodPost, record.Request.Method)
	require.Equal(t, "/orders", record.Request.Path)
	require.Equal(t, "203.0.113.20", record.Request.ClientIP)
}

func TestRequestExtractor_NoRequest(t *testing.T) {
	t.Parallel()

	_, ok := internal.RequestExtractor()(context.Background())
	require.False(t, ok)
}
