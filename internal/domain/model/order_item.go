package model

import "github.com/shopspring/decimal"

type OrderItem struct {
	ID         int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64 `gorm:"not null;index" json:"-"`
	MenuItemID int64 `gorm:"not null;index" json:"menu_item_id"`
	Quantity   int64 `gorm:"not null" json:"quantity"`

	// 注文時点の価格スナップショット。後からメニュー価格が変わっても影響しない。
	PricePerItem decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_item"`
}
