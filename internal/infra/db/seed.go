package db

import (
	"orderservice/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedMenu は起動時の初期メニュー投入。すでにデータがあれば何もしない。
// リクエスト処理の外で、初期化時に1回だけ呼ぶ。
func SeedMenu(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&model.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []model.MenuItem{
		{
			Name:        "Pizza Margherita",
			Description: "Classic pizza with tomato sauce and mozzarella",
			Price:       decimal.RequireFromString("150.00"),
		},
		{
			Name:        "Caesar Salad",
			Description: "Salad with chicken, croutons and caesar dressing",
			Price:       decimal.RequireFromString("120.50"),
		},
		{
			Name:        "Ribeye Steak",
			Description: "Juicy medium-rare beef steak",
			Price:       decimal.RequireFromString("350.75"),
		},
	}

	return gormDB.Create(&items).Error
}
