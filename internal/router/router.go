package router

import (
	"github.com/labstack/echo/v4"

	"crud-boilerplate/internal/database"
	"crud-boilerplate/internal/handler"
	"crud-boilerplate/internal/handler/items"
	"crud-boilerplate/internal/handler/users"
)

// Setup 註冊所有路由並注入 db，staticDir 為靜態資源目錄
func Setup(e *echo.Echo, db database.DB, staticDir string) {
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler(db))
	e.Static("/static", staticDir)

	api := e.Group("/api/v1")

	// Users CRUD
	apiUsers := api.Group("/users")
	apiUsers.POST("", users.CreateUserHandler(db))
	apiUsers.GET("", users.ListUsersHandler(db))
	apiUsers.GET("/:id", users.GetUserHandler(db))
	apiUsers.PUT("/:id", users.UpdateUserHandler(db))
	apiUsers.DELETE("/:id", users.DeleteUserHandler(db))

	// Items CRUD
	apiItems := api.Group("/items")
	apiItems.POST("", items.CreateItemHandler(db))
	apiItems.GET("", items.ListItemsHandler(db))
	apiItems.GET("/owner/:owner_id", items.ListItemsByOwnerHandler(db))
	apiItems.GET("/:id", items.GetItemHandler(db))
	apiItems.PUT("/:id", items.UpdateItemHandler(db))
	apiItems.DELETE("/:id", items.DeleteItemHandler(db))
}
