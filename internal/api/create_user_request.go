package api

// CreateUserRequest 定義建立新使用者的請求格式 (JSON)
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// 使用者帳號
	// required: true
	Username string `json:"username" validate:"required" example:"alice"`

	// 使用者 Email (會自動轉為小寫)
	// required: true
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`

	// 顯示名稱，可省略
	FullName *string `json:"full_name" example:"Alice Liddell"`
}
