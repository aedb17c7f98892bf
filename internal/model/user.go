package model

import "time"

type User struct {
	ID        int        `db:"id" json:"id"`
	Username  string     `db:"username" json:"username"`
	Email     string     `db:"email" json:"email"`
	FullName  *string    `db:"full_name" json:"full_name"`
	IsActive  bool       `db:"is_active" json:"is_active"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}

// UserPatch 描述部分更新的欄位，nil 表示保留原值
type UserPatch struct {
	Username *string
	Email    *string
	FullName *string
	IsActive *bool
}
