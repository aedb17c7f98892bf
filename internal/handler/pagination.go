package handler

import (
	"strconv"

	"crud-boilerplate/internal/service"

	"github.com/labstack/echo/v4"
)

// ParsePagination 解析 skip/limit 查詢參數，未提供或非數字時取預設值；
// 夾至合法範圍由 service.NormalizePagination 負責
func ParsePagination(c echo.Context) (skip, limit int) {
	skip = service.DefaultSkip
	limit = service.DefaultLimit
	if v := c.QueryParam("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			skip = n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	return skip, limit
}
