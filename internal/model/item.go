package model

import "time"

type Item struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	OwnerID     int        `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

// ItemPatch 描述部分更新的欄位，nil 表示保留原值
type ItemPatch struct {
	Title       *string
	Description *string
	IsActive    *bool
}
