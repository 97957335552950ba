package usecase

import (
	"context"
	"net/http"

	"orderservice/internal/domain/model"
	repo "orderservice/internal/repository"
)

type MenuUsecase struct {
	menuItems repo.MenuItemRepository
}

// DI
func NewMenuUsecase(menuItems repo.MenuItemRepository) *MenuUsecase {
	return &MenuUsecase{menuItems: menuItems}
}

// メニュー全件を返す。変換なしの素通し。
func (u *MenuUsecase) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	items, err := u.menuItems.FindAll(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}
