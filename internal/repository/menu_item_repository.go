package repository

import (
	"context"
	"errors"

	"orderservice/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// メニューの読み取りだけを約束。
type MenuItemRepository interface {
	FindAll(ctx context.Context) ([]model.MenuItem, error)

	// 存在するIDの分だけ返す。欠けの検出は呼び出し側の責任。
	FindByIDs(ctx context.Context, ids []int64) (map[int64]model.MenuItem, error)
}
