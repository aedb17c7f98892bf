package api

// UpdateItemRequest 定義更新 item 的請求格式，所有欄位皆可省略，
// 省略（或為 null）的欄位保留原值
// swagger:model UpdateItemRequest
type UpdateItemRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1" example:"book"`
	Description *string `json:"description" example:"a paperback"`
	IsActive    *bool   `json:"is_active" example:"true"`
}
