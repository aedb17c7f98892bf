package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const landingPage = `<html>
    <head>
        <title>CRUD Boilerplate</title>
        <link rel="stylesheet" href="/static/style.css">
    </head>
    <body>
        <h1>CRUD Boilerplate</h1>
        <p>Welcome to CRUD Boilerplate!</p>
        <ul>
            <li><a href="/swagger/index.html">Swagger UI</a></li>
            <li><a href="/api/v1/users">Users API</a></li>
            <li><a href="/api/v1/items">Items API</a></li>
        </ul>
    </body>
</html>
`

// RootHandler 回傳首頁 HTML
// @Summary     Landing page
// @Description 回傳服務首頁與 API 連結
// @Tags        root
// @Produce     html
// @Success     200 {string} string "HTML"
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.HTML(http.StatusOK, landingPage)
	}
}
