package service

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// 服務層錯誤，訊息直接作為 API 回應的 message
var (
	ErrUserNotFound  = errors.New("User not found")
	ErrItemNotFound  = errors.New("Item not found")
	ErrOwnerNotFound = errors.New("Owner not found")
	ErrEmailTaken    = errors.New("Email already registered")
	ErrUsernameTaken = errors.New("Username already taken")
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// isUniqueViolation 判斷是否違反指定的 UNIQUE constraint
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}
