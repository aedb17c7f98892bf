package api

// UpdateUserRequest 定義更新使用者的請求格式，所有欄位皆可省略，
// 省略（或為 null）的欄位保留原值
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1" example:"alice"`
	Email    *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	FullName *string `json:"full_name" example:"Alice Liddell"`
	IsActive *bool   `json:"is_active" example:"true"`
}
