package repository

import (
	"context"
	"fmt"

	"crud-boilerplate/internal/database"
	"crud-boilerplate/internal/model"
)

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, full_name, is_active, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, full_name, is_active, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func GetUserByUsername(ctx context.Context, db database.DB, username string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, username, email, full_name, is_active, created_at, updated_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

// ListUsers 依插入順序回傳使用者列表，skip/limit 由呼叫端保證合法
func ListUsers(ctx context.Context, db database.DB, skip, limit int) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT id, username, email, full_name, is_active, created_at, updated_at
		 FROM users ORDER BY id OFFSET $1 LIMIT $2`,
		skip,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.FullName,
			&u.IsActive,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (username, email, full_name)
		 VALUES ($1, $2, $3)
		 RETURNING id, is_active, created_at`,
		u.Username,
		u.Email,
		u.FullName,
	)
	if err := row.Scan(&u.ID, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// UpdateUser 只覆寫 patch 中非 nil 的欄位，查無該 ID 時回傳 pgx.ErrNoRows
func UpdateUser(ctx context.Context, db database.DB, userID int, p *model.UserPatch) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users
		 SET username = COALESCE($1, username),
		     email = COALESCE($2, email),
		     full_name = COALESCE($3, full_name),
		     is_active = COALESCE($4, is_active),
		     updated_at = now()
		 WHERE id = $5
		 RETURNING id, username, email, full_name, is_active, created_at, updated_at`,
		p.Username,
		p.Email,
		p.FullName,
		p.IsActive,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return u, nil
}

// DeleteUser 回傳是否確實刪除了一筆資料
func DeleteUser(ctx context.Context, db database.DB, userID int) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
