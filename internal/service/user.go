package service

import (
	"context"
	"errors"

	"crud-boilerplate/internal/database"
	"crud-boilerplate/internal/model"
	"crud-boilerplate/internal/repository"

	"github.com/jackc/pgx/v5"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 100
)

// repository 函式，測試可覆寫
var (
	repoGetUserByID       = repository.GetUserByID
	repoGetUserByEmail    = repository.GetUserByEmail
	repoGetUserByUsername = repository.GetUserByUsername
	repoListUsers         = repository.ListUsers
	repoCreateUser        = repository.CreateUser
	repoUpdateUser        = repository.UpdateUser
	repoDeleteUser        = repository.DeleteUser
)

// NormalizePagination 套用分頁預設值並夾至合法範圍：
// skip >= 0，limit ∈ [1, MaxLimit]，limit 未指定（<1）時取預設 100
func NormalizePagination(skip, limit int) (int, int) {
	if skip < 0 {
		skip = DefaultSkip
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}

// GetUser 查無資料時回傳 ErrUserNotFound
func GetUser(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	u, err := repoGetUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetUserByEmail 查無資料時回傳 (nil, nil)，是唯一不回報 not found 的查詢
func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	u, err := repoGetUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func ListUsers(ctx context.Context, db database.DB, skip, limit int) ([]model.User, error) {
	skip, limit = NormalizePagination(skip, limit)
	return repoListUsers(ctx, db, skip, limit)
}

// CreateUser 建立前先各自檢查 email 與 username 是否已被使用
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if _, err := repoGetUserByEmail(ctx, db, u.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if _, err := repoGetUserByUsername(ctx, db, u.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	created, err := repoCreateUser(ctx, db, u)
	if err != nil {
		// 先查後寫仍可能與並發請求競態，以 UNIQUE constraint 作最終防線
		switch {
		case isUniqueViolation(err, "users_email_key"):
			return nil, ErrEmailTaken
		case isUniqueViolation(err, "users_username_key"):
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return created, nil
}

// UpdateUser 更新的 email/username 若已被其他使用者持有則回傳衝突，
// 更新為自己目前的值則放行
func UpdateUser(ctx context.Context, db database.DB, userID int, p *model.UserPatch) (*model.User, error) {
	if p.Email != nil {
		existing, err := repoGetUserByEmail(ctx, db, *p.Email)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, ErrEmailTaken
		}
	}
	if p.Username != nil {
		existing, err := repoGetUserByUsername(ctx, db, *p.Username)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		if existing != nil && existing.ID != userID {
			return nil, ErrUsernameTaken
		}
	}

	u, err := repoUpdateUser(ctx, db, userID, p)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, ErrUserNotFound
		case isUniqueViolation(err, "users_email_key"):
			return nil, ErrEmailTaken
		case isUniqueViolation(err, "users_username_key"):
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

func DeleteUser(ctx context.Context, db database.DB, userID int) error {
	deleted, err := repoDeleteUser(ctx, db, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}
