package api

import (
	"time"

	"crud-boilerplate/internal/model"
)

// ItemResponse 定義回傳的 item 資訊
// swagger:model ItemResponse
type ItemResponse struct {
	ID          int        `json:"id" example:"1"`
	Title       string     `json:"title" example:"book"`
	Description *string    `json:"description" example:"a paperback"`
	IsActive    bool       `json:"is_active" example:"true"`
	OwnerID     int        `json:"owner_id" example:"1"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-05-01T15:04:05Z"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func NewItemResponse(i *model.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		Title:       i.Title,
		Description: i.Description,
		IsActive:    i.IsActive,
		OwnerID:     i.OwnerID,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
