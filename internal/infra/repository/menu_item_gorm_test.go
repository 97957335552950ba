package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMenuItemGormRepository_FindAll(t *testing.T) {
	gdb := newTestDB(t)
	seeded := seedTestMenu(t, gdb)

	r := NewMenuItemGormRepository(gdb)

	items, err := r.FindAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, seeded[0].Name, items[0].Name)
	assert.True(t, items[0].Price.Equal(dec("150.00")))
}

// 書き込みを挟まなければ2回呼んでも同じ結果
func TestMenuItemGormRepository_FindAll_Idempotent(t *testing.T) {
	gdb := newTestDB(t)
	seedTestMenu(t, gdb)

	r := NewMenuItemGormRepository(gdb)
	ctx := context.Background()

	first, err := r.FindAll(ctx)
	assert.NoError(t, err)
	second, err := r.FindAll(ctx)
	assert.NoError(t, err)

	assert.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.True(t, first[i].Price.Equal(second[i].Price))
	}
}

func TestMenuItemGormRepository_FindByIDs_ReturnsOnlyExisting(t *testing.T) {
	gdb := newTestDB(t)
	seeded := seedTestMenu(t, gdb)

	r := NewMenuItemGormRepository(gdb)

	m, err := r.FindByIDs(context.Background(), []int64{seeded[0].ID, 999})
	assert.NoError(t, err)

	//存在する分だけ返る。欠けはエラーにしない。
	assert.Len(t, m, 1)
	assert.Equal(t, seeded[0].Name, m[seeded[0].ID].Name)
}
