package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// この範囲で作られる注文はすべてPLACED。以降の遷移は扱わない。
	OrderStatusPlaced OrderStatus = "PLACED"
)

type Order struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64           `gorm:"not null;index" json:"user_id"`
	Status     OrderStatus     `gorm:"type:varchar(20);not null" json:"status"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`

	// 注文が明細を所有する。明細側から注文への逆参照は持たせない。
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}
