package service

import (
	"context"
	"errors"

	"crud-boilerplate/internal/database"
	"crud-boilerplate/internal/model"
	"crud-boilerplate/internal/repository"

	"github.com/jackc/pgx/v5"
)

// repository 函式，測試可覆寫
var (
	repoGetItemByID      = repository.GetItemByID
	repoListItems        = repository.ListItems
	repoListItemsByOwner = repository.ListItemsByOwner
	repoCreateItem       = repository.CreateItem
	repoUpdateItem       = repository.UpdateItem
	repoDeleteItem       = repository.DeleteItem
)

// GetItem 查無資料時回傳 ErrItemNotFound
func GetItem(ctx context.Context, db database.DB, itemID int) (*model.Item, error) {
	i, err := repoGetItemByID(ctx, db, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return i, nil
}

func ListItems(ctx context.Context, db database.DB, skip, limit int) ([]model.Item, error) {
	skip, limit = NormalizePagination(skip, limit)
	return repoListItems(ctx, db, skip, limit)
}

func ListItemsByOwner(ctx context.Context, db database.DB, ownerID, skip, limit int) ([]model.Item, error) {
	skip, limit = NormalizePagination(skip, limit)
	return repoListItemsByOwner(ctx, db, ownerID, skip, limit)
}

// CreateItem 先確認 owner 存在才建立
func CreateItem(ctx context.Context, db database.DB, i *model.Item) (*model.Item, error) {
	if _, err := repoGetUserByID(ctx, db, i.OwnerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	created, err := repoCreateItem(ctx, db, i)
	if err != nil {
		// owner 可能在檢查後被並發刪除，FK constraint 作最終防線
		if isForeignKeyViolation(err) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}
	return created, nil
}

func UpdateItem(ctx context.Context, db database.DB, itemID int, p *model.ItemPatch) (*model.Item, error) {
	i, err := repoUpdateItem(ctx, db, itemID, p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return i, nil
}

func DeleteItem(ctx context.Context, db database.DB, itemID int) error {
	deleted, err := repoDeleteItem(ctx, db, itemID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}
