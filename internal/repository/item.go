package repository

import (
	"context"
	"fmt"

	"crud-boilerplate/internal/database"
	"crud-boilerplate/internal/model"
)

func GetItemByID(ctx context.Context, db database.DB, itemID int) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, is_active, owner_id, created_at, updated_at
		 FROM items WHERE id = $1`,
		itemID,
	)
	i := &model.Item{}
	if err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.IsActive,
		&i.OwnerID,
		&i.CreatedAt,
		&i.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetItemByID: %w", err)
	}
	return i, nil
}

func ListItems(ctx context.Context, db database.DB, skip, limit int) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, is_active, owner_id, created_at, updated_at
		 FROM items ORDER BY id OFFSET $1 LIMIT $2`,
		skip,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var i model.Item
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.IsActive,
			&i.OwnerID,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListItems: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	return items, nil
}

// ListItemsByOwner 只回傳 owner_id 相符的 items
func ListItemsByOwner(ctx context.Context, db database.DB, ownerID, skip, limit int) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, is_active, owner_id, created_at, updated_at
		 FROM items WHERE owner_id = $1 ORDER BY id OFFSET $2 LIMIT $3`,
		ownerID,
		skip,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItemsByOwner: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var i model.Item
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.IsActive,
			&i.OwnerID,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListItemsByOwner: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListItemsByOwner: %w", err)
	}
	return items, nil
}

func CreateItem(ctx context.Context, db database.DB, i *model.Item) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO items (title, description, owner_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, is_active, created_at`,
		i.Title,
		i.Description,
		i.OwnerID,
	)
	if err := row.Scan(&i.ID, &i.IsActive, &i.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateItem: %w", err)
	}
	return i, nil
}

// UpdateItem 只覆寫 patch 中非 nil 的欄位，查無該 ID 時回傳 pgx.ErrNoRows
func UpdateItem(ctx context.Context, db database.DB, itemID int, p *model.ItemPatch) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`UPDATE items
		 SET title = COALESCE($1, title),
		     description = COALESCE($2, description),
		     is_active = COALESCE($3, is_active),
		     updated_at = now()
		 WHERE id = $4
		 RETURNING id, title, description, is_active, owner_id, created_at, updated_at`,
		p.Title,
		p.Description,
		p.IsActive,
		itemID,
	)
	i := &model.Item{}
	if err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.IsActive,
		&i.OwnerID,
		&i.CreatedAt,
		&i.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("UpdateItem: %w", err)
	}
	return i, nil
}

// DeleteItem 回傳是否確實刪除了一筆資料
func DeleteItem(ctx context.Context, db database.DB, itemID int) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM items WHERE id = $1`,
		itemID,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteItem: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
