package users

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"crud-boilerplate/internal/api"
	"crud-boilerplate/internal/database"
	"crud-boilerplate/internal/handler"
	"crud-boilerplate/internal/model"
	"crud-boilerplate/internal/service"

	"github.com/labstack/echo/v4"
)

// service 函式，測試可覆寫
var (
	createUser = service.CreateUser
	getUser    = service.GetUser
	listUsers  = service.ListUsers
	updateUser = service.UpdateUser
	deleteUser = service.DeleteUser
)

// CreateUserHandler 建立新使用者
// @Summary     Create a new user
// @Description 建立新使用者，Email 會自動轉為小寫；Email 或 username 已被使用時回傳 400
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body api.CreateUserRequest true "使用者資料"
// @Success     201 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Email 轉為小寫以確保一致性
		req.Email = strings.ToLower(req.Email)

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username: req.Username,
			Email:    req.Email,
			FullName: req.FullName,
		})
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) || errors.Is(err, service.ErrUsernameTaken) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewUserResponse(user))
	}
}

// ListUsersHandler 查詢使用者列表
// @Summary     List users
// @Description 依插入順序回傳使用者列表，支援 skip/limit 分頁
// @Tags        users
// @Produce     json
// @Param       skip  query int false "略過筆數" default(0)
// @Param       limit query int false "回傳筆數上限 (1-100)" default(100)
// @Success     200 {array} api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users [get]
func ListUsersHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		skip, limit := handler.ParsePagination(c)
		users, err := listUsers(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.UserResponse, 0, len(users))
		for i := range users {
			resp = append(resp, api.NewUserResponse(&users[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetUserHandler 透過使用者 ID 取得使用者資訊
// @Summary     Get a user by ID
// @Description 透過 ID 查詢並回傳使用者詳細資料
// @Tags        users
// @Produce     json
// @Param       id path int true "使用者 ID"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "使用者不存在"
// @Failure     500 {object} api.ErrorResponse "伺服器錯誤"
// @Router      /users/{id} [get]
func GetUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		user, err := getUser(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// UpdateUserHandler 更新指定使用者資料，只覆寫請求中出現的欄位
// @Summary     Update a user by ID
// @Description 部分更新使用者資料；更新的 Email/username 已被其他使用者持有時回傳 400
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "使用者 ID"
// @Param       user body api.UpdateUserRequest true "欲更新的欄位"
// @Success     200 {object} api.UserResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /users/{id} [put]
func UpdateUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		var req api.UpdateUserRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if req.Email != nil {
			lower := strings.ToLower(*req.Email)
			req.Email = &lower
		}

		user, err := updateUser(c.Request().Context(), db, id, &model.UserPatch{
			Username: req.Username,
			Email:    req.Email,
			FullName: req.FullName,
			IsActive: req.IsActive,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrUsernameTaken):
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
			case errors.Is(err, service.ErrUserNotFound):
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.NewUserResponse(user))
	}
}

// DeleteUserHandler 刪除指定 ID 的使用者
// @Summary     Delete a user by ID
// @Description 根據使用者 ID 刪除使用者，其擁有的 items 一併刪除
// @Tags        users
// @Param       id path int true "使用者 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "使用者不存在"
// @Failure     500 {object} api.ErrorResponse "伺服器錯誤"
// @Router      /users/{id} [delete]
func DeleteUserHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid user ID"})
		}

		if err := deleteUser(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.NoContent(http.StatusNoContent)
	}
}
