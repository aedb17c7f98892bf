package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	e := echo.New()

	cases := []struct {
		name                string
		query               string
		wantSkip, wantLimit int
	}{
		{"no params", "", 0, 100},
		{"both params", "?skip=5&limit=20", 5, 20},
		{"skip only", "?skip=3", 3, 100},
		{"limit only", "?limit=7", 0, 7},
		{"non-numeric ignored", "?skip=abc&limit=xyz", 0, 100},
		{"negative passes through", "?skip=-1&limit=-2", -1, -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users"+tc.query, nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)
			skip, limit := ParsePagination(ctx)
			require.Equal(t, tc.wantSkip, skip)
			require.Equal(t, tc.wantLimit, limit)
		})
	}
}
