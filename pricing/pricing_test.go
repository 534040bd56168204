package pricing

import (
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Pen-Clock/BodiaStore/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.Item{}))
	return db
}

func TestResolve(t *testing.T) {
	db := openTestDB(t)
	item := models.Item{Name: "Lamp", Price: 42.50}
	require.NoError(t, db.Create(&item).Error)

	price, err := Resolve(db, item.ItemID)
	require.NoError(t, err)
	require.Equal(t, 42.50, price)
}

func TestResolveMissingItem(t *testing.T) {
	db := openTestDB(t)

	_, err := Resolve(db, 999)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrItemNotFound))
}

func TestResolveManyCoversExactlyExistingIDs(t *testing.T) {
	db := openTestDB(t)
	a := models.Item{Name: "A", Price: 10}
	b := models.Item{Name: "B", Price: 20}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)

	prices, err := ResolveMany(db, []uint{a.ItemID, b.ItemID, 999})
	require.NoError(t, err)
	require.Len(t, prices, 2)
	require.Equal(t, 10.0, prices[a.ItemID])
	require.Equal(t, 20.0, prices[b.ItemID])
	_, ok := prices[999]
	require.False(t, ok)
}
