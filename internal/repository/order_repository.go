package repository

import (
	"context"

	"orderservice/internal/domain/model"
)

// 注文の永続化（保存・取得）だけを約束。
type OrderRepository interface {
	// 注文と明細をまとめて作成する。IDと作成時刻はDB側で採番。
	Create(ctx context.Context, order model.Order) (model.Order, error)
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
