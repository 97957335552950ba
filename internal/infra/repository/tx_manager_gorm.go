package repository

import (
	"context"

	repo "orderservice/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	menuItems repo.MenuItemRepository
	orders    repo.OrderRepository
}

func (r *txReposGorm) MenuItems() repo.MenuItemRepository { return r.menuItems }
func (r *txReposGorm) Orders() repo.OrderRepository       { return r.orders }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			menuItems: NewMenuItemGormRepository(tx),
			orders:    NewOrderGormRepository(tx),
		}
		return fn(r)
	})
}
