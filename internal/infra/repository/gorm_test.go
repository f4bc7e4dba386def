package repository

import (
	"context"
	"os"
	"testing"

	"minishop/internal/domain/model"
	"minishop/internal/infra/catalog"
	"minishop/internal/infra/db"
	repo "minishop/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// DATABASE_URL が無ければスキップ
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	gormDB, err := db.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	return gormDB
}

func TestKeyValueGormStore(t *testing.T) {
	gormDB := openTestDB(t)
	require.NoError(t, gormDB.Where("key IN ?", []string{"cart", "other"}).Delete(&model.StorageSlot{}).Error)

	exerciseKeyValueStore(t, NewKeyValueGormStore(gormDB))
}

func TestProductGorm_SeedAndList(t *testing.T) {
	ctx := context.Background()
	gormDB := openTestDB(t)
	r := NewProductGormRepository(gormDB)

	products := catalog.MustProducts()
	require.NoError(t, r.Seed(ctx, products))
	// 2回目も上書きで通る
	require.NoError(t, r.Seed(ctx, products))

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(all), len(products))
	assert.Equal(t, products[0], all[0])

	p, err := r.FindByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Stock)

	_, err = r.FindByID(ctx, 999999)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
