package repository

import (
	"context"

	"orderservice/internal/domain/model"

	"gorm.io/gorm"
)

type MenuItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewMenuItemGormRepository(db *gorm.DB) *MenuItemGormRepository {
	return &MenuItemGormRepository{db: db}
}

// メニュー全件。絞り込みなし。
func (r *MenuItemGormRepository) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// 存在するIDの分だけmapで返す
func (r *MenuItemGormRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}

	m := make(map[int64]model.MenuItem, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return m, nil
}
