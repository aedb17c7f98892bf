package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestRootHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	err := RootHandler()(ctx)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	require.Contains(t, rec.Body.String(), "/swagger/index.html")
	require.Contains(t, rec.Body.String(), "/api/v1/users")
	require.Contains(t, rec.Body.String(), "/api/v1/items")
	require.Contains(t, rec.Body.String(), "/static/style.css")
}
