package items

import (
	"errors"
	"net/http"
	"strconv"

	"crud-boilerplate/internal/api"
	"crud-boilerplate/internal/database"
	"crud-boilerplate/internal/handler"
	"crud-boilerplate/internal/model"
	"crud-boilerplate/internal/service"

	"github.com/labstack/echo/v4"
)

// service 函式，測試可覆寫
var (
	createItem       = service.CreateItem
	getItem          = service.GetItem
	listItems        = service.ListItems
	listItemsByOwner = service.ListItemsByOwner
	updateItem       = service.UpdateItem
	deleteItem       = service.DeleteItem
)

// CreateItemHandler 建立新 item
// @Summary     Create a new item
// @Description 建立新 item，owner_id 對應的使用者不存在時回傳 404
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       item body api.CreateItemRequest true "item 資料"
// @Success     201 {object} api.ItemResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse "擁有者不存在"
// @Failure     500 {object} api.ErrorResponse
// @Router      /items [post]
func CreateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		item, err := createItem(c.Request().Context(), db, &model.Item{
			Title:       req.Title,
			Description: req.Description,
			OwnerID:     req.OwnerID,
		})
		if err != nil {
			if errors.Is(err, service.ErrOwnerNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, api.NewItemResponse(item))
	}
}

// ListItemsHandler 查詢 item 列表
// @Summary     List items
// @Description 依插入順序回傳 item 列表，支援 skip/limit 分頁
// @Tags        items
// @Produce     json
// @Param       skip  query int false "略過筆數" default(0)
// @Param       limit query int false "回傳筆數上限 (1-100)" default(100)
// @Success     200 {array} api.ItemResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items [get]
func ListItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		skip, limit := handler.ParsePagination(c)
		items, err := listItems(c.Request().Context(), db, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, api.NewItemResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// ListItemsByOwnerHandler 查詢指定擁有者的 item 列表
// @Summary     List items by owner
// @Description 回傳 owner_id 相符的 item 列表，支援 skip/limit 分頁
// @Tags        items
// @Produce     json
// @Param       owner_id path  int true  "擁有者的使用者 ID"
// @Param       skip     query int false "略過筆數" default(0)
// @Param       limit    query int false "回傳筆數上限 (1-100)" default(100)
// @Success     200 {array} api.ItemResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items/owner/{owner_id} [get]
func ListItemsByOwnerHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ownerID, err := strconv.Atoi(c.Param("owner_id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid owner ID"})
		}

		skip, limit := handler.ParsePagination(c)
		items, err := listItemsByOwner(c.Request().Context(), db, ownerID, skip, limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		resp := make([]api.ItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, api.NewItemResponse(&items[i]))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetItemHandler 透過 item ID 取得 item 資訊
// @Summary     Get an item by ID
// @Description 透過 ID 查詢並回傳 item 詳細資料
// @Tags        items
// @Produce     json
// @Param       id path int true "item ID"
// @Success     200 {object} api.ItemResponse
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "item 不存在"
// @Failure     500 {object} api.ErrorResponse "伺服器錯誤"
// @Router      /items/{id} [get]
func GetItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}

		item, err := getItem(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, service.ErrItemNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.NewItemResponse(item))
	}
}

// UpdateItemHandler 更新指定 item 資料，只覆寫請求中出現的欄位
// @Summary     Update an item by ID
// @Description 部分更新 item 資料
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       id   path int                   true "item ID"
// @Param       item body api.UpdateItemRequest true "欲更新的欄位"
// @Success     200 {object} api.ItemResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /items/{id} [put]
func UpdateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}

		var req api.UpdateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		item, err := updateItem(c.Request().Context(), db, id, &model.ItemPatch{
			Title:       req.Title,
			Description: req.Description,
			IsActive:    req.IsActive,
		})
		if err != nil {
			if errors.Is(err, service.ErrItemNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusOK, api.NewItemResponse(item))
	}
}

// DeleteItemHandler 刪除指定 ID 的 item
// @Summary     Delete an item by ID
// @Description 根據 item ID 刪除 item
// @Tags        items
// @Param       id path int true "item ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse "參數錯誤"
// @Failure     404 {object} api.ErrorResponse "item 不存在"
// @Failure     500 {object} api.ErrorResponse "伺服器錯誤"
// @Router      /items/{id} [delete]
func DeleteItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid item ID"})
		}

		if err := deleteItem(c.Request().Context(), db, id); err != nil {
			if errors.Is(err, service.ErrItemNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.NoContent(http.StatusNoContent)
	}
}
