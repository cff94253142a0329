package internal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/UNGVSN/symfony-educational-project-sub002/internal"
)

func TestTypedParams(t *testing.T) {
	t.Parallel()

	req := internal.NewRequest(internal.Snapshot{
		Attributes: map[string]any{"id": "42", "slug": "post"},
		Query:      map[string]any{"page": "3", "ratio": "0.5", "debug": "true", "bad": "x", "n": 7},
	})

	require.Equal(t, 42, internal.Param[int](req, "id"))
	require.Equal(t, int64(42), internal.Param[int64](req, "id"))
	require.Equal(t, "post", internal.Param[string](req, "slug"))
	require.Zero(t, internal.Param[int](req, "slug"))
	require.Zero(t, internal.Param[int](req, "missing"))

	require.Equal(t, 3, internal.Query[int](req, "page"))
	require.Equal(t, 7, internal.Query[int](req, "n"))
	require.InDelta(t, 0.5, internal.Query[float64](req, "ratio"), 1e-9)
	require.True(t, internal.Query[bool](req, "debug"))

	require.Equal(t, 10, internal.QueryDefault(req, "missing", 10))
	require.Equal(t, 10, internal.QueryDefault(req, "bad", 10))
	require.Equal(t, 3, internal.QueryDefault(req, "page", 10))
	require.Equal(t, "x", internal.QueryDefault(req, "bad", "fallback"))
}

type (
	userID   string
	userNum  int
	pageSize int64
	enabled  bool
)

func TestTypedParams_NamedTypes(t *testing.T) {
	t.Parallel()

	req := internal.NewRequest(internal.Snapshot{
		Attributes: map[string]any{"id": "u-7", "num": "12"},
		Query:      map[string]any{"size": "50", "on": "1", "bad": "x"},
	})

	require.Equal(t, userID("u-7"), internal.Param[userID](req, "id"))
	require.Equal(t, userNum(12), internal.Param[userNum](req, "num"))
	require.Equal(t, pageSize(50), internal.Query[pageSize](req, "size"))
	require.Equal(t, enabled(true), internal.Query[enabled](req, "on"))
	require.Equal(t, userNum(3), internal.QueryDefault(req, "bad", userNum(3)))
}
