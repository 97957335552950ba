package repository

import (
	"fmt"
	"testing"

	"orderservice/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// テストごとに独立したin-memory DBを用意する
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("sqlite open failed: %v", err)
	}

	if err := gdb.AutoMigrate(&model.MenuItem{}, &model.Order{}, &model.OrderItem{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	return gdb
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedTestMenu(t *testing.T, gdb *gorm.DB) []model.MenuItem {
	t.Helper()

	items := []model.MenuItem{
		{Name: "Pizza Margherita", Description: "Classic pizza", Price: dec("150.00")},
		{Name: "Caesar Salad", Description: "Salad with chicken", Price: dec("120.50")},
	}
	if err := gdb.Create(&items).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return items
}

func countRows(t *testing.T, gdb *gorm.DB, m interface{}) int64 {
	t.Helper()

	var n int64
	if err := gdb.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return n
}
