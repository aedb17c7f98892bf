package handler

import (
	"net/http"

	"crud-boilerplate/internal/api"
	"crud-boilerplate/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthResponse 健康檢查回應模型
// swagger:model HealthResponse
type HealthResponse struct {
	// 服務狀態
	Status string `json:"status" example:"healthy"`
}

// HealthHandler 健康檢查，同時確認資料庫連線是否正常
// @Summary     Health Check
// @Description 回傳 healthy，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} HealthResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /health [get]
func HealthHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
	}
}
