package api

// CreateItemRequest 定義建立新 item 的請求格式 (JSON)
// swagger:model CreateItemRequest
type CreateItemRequest struct {
	// 標題
	// required: true
	Title string `json:"title" validate:"required" example:"book"`

	// 描述，可省略
	Description *string `json:"description" example:"a paperback"`

	// 擁有者的使用者 ID
	// required: true
	OwnerID int `json:"owner_id" validate:"required" example:"1"`
}
