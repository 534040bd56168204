package cartControllers

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Pen-Clock/BodiaStore/cache"
	"github.com/Pen-Clock/BodiaStore/models"
	"github.com/Pen-Clock/BodiaStore/pricing"
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
	require.NoError(t, db.AutoMigrate(
		&models.Item{},
		&models.Customer{},
		&models.CartLine{},
	))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name string, price float64) uint {
	t.Helper()
	item := models.Item{Name: name, Price: price}
	require.NoError(t, db.Create(&item).Error)
	return item.ItemID
}

func lineFor(t *testing.T, db *gorm.DB, customerID, itemID uint) models.CartLine {
	t.Helper()
	var line models.CartLine
	require.NoError(t, db.First(&line, "customer_id = ? AND item_id = ?", customerID, itemID).Error)
	return line
}

func lineCount(t *testing.T, db *gorm.DB, customerID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.CartLine{}).
		Where("customer_id = ?", customerID).Count(&count).Error)
	return count
}

func TestAddItemMergesQuantityKeepsFirstPrice(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	itemID := seedItem(t, db, "Desk", 70)

	line, err := AddItem(ctx, db, store, 7, itemID, 2)
	require.NoError(t, err)
	require.Equal(t, 2, line.Quantity)
	require.Equal(t, 70.0, line.Price)

	// Catalog price changes between adds; the snapshot must not move.
	require.NoError(t, db.Model(&models.Item{}).
		Where("item_id = ?", itemID).Update("price", 99).Error)

	line, err = AddItem(ctx, db, store, 7, itemID, 3)
	require.NoError(t, err)
	require.Equal(t, 5, line.Quantity)
	require.Equal(t, 70.0, line.Price)

	require.EqualValues(t, 1, lineCount(t, db, 7))
}

func TestRepeatedAddsConverge(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	itemID := seedItem(t, db, "Mug", 5)

	const n = 8
	for i := 0; i < n; i++ {
		_, err := AddItem(ctx, db, store, 7, itemID, 1)
		require.NoError(t, err)
	}
	require.Equal(t, n, lineFor(t, db, 7, itemID).Quantity)
}

func TestAddItemUnknownItem(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()

	_, err := AddItem(context.Background(), db, store, 7, 999, 1)
	require.True(t, errors.Is(err, pricing.ErrItemNotFound))
	require.EqualValues(t, 0, lineCount(t, db, 7))
}

func TestAddItemProvisionsCustomer(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	itemID := seedItem(t, db, "Chair", 30)

	_, err := AddItem(context.Background(), db, store, 7, itemID, 1)
	require.NoError(t, err)

	var customer models.Customer
	require.NoError(t, db.First(&customer, "customer_id = ?", 7).Error)
}

func TestAddItemsMergesLikeSingleAdd(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	deskID := seedItem(t, db, "Desk", 70)
	mugID := seedItem(t, db, "Mug", 5)

	_, err := AddItem(ctx, db, store, 7, deskID, 2)
	require.NoError(t, err)

	lines, err := AddItems(ctx, db, store, 7, []LineInput{
		{ItemID: deskID, Quantity: 1},
		{ItemID: mugID, Quantity: 4},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	require.Equal(t, 3, lineFor(t, db, 7, deskID).Quantity)
	require.Equal(t, 4, lineFor(t, db, 7, mugID).Quantity)
	require.EqualValues(t, 2, lineCount(t, db, 7))
}

func TestAddItemsFailsAtomicallyOnUnknownID(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	deskID := seedItem(t, db, "Desk", 70)

	_, err := AddItems(context.Background(), db, store, 7, []LineInput{
		{ItemID: deskID, Quantity: 1},
		{ItemID: 999, Quantity: 1},
	})
	require.True(t, errors.Is(err, pricing.ErrItemNotFound))
	require.EqualValues(t, 0, lineCount(t, db, 7))
}

func TestSetQuantityOverwrites(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	itemID := seedItem(t, db, "Desk", 70)

	_, err := AddItem(ctx, db, store, 7, itemID, 2)
	require.NoError(t, err)

	line, err := SetQuantity(ctx, db, store, 7, itemID, 9)
	require.NoError(t, err)
	require.NotNil(t, line)
	require.Equal(t, 9, line.Quantity)
}

func TestSetQuantityNonPositiveDeletes(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	itemID := seedItem(t, db, "Desk", 70)

	_, err := AddItem(ctx, db, store, 7, itemID, 2)
	require.NoError(t, err)

	line, err := SetQuantity(ctx, db, store, 7, itemID, 0)
	require.NoError(t, err)
	require.Nil(t, line)
	require.EqualValues(t, 0, lineCount(t, db, 7))

	// Idempotent when the line is already gone.
	line, err = SetQuantity(ctx, db, store, 7, itemID, -3)
	require.NoError(t, err)
	require.Nil(t, line)
}

func TestSetQuantitiesMixedBatch(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	deskID := seedItem(t, db, "Desk", 70)
	mugID := seedItem(t, db, "Mug", 5)

	_, err := AddItems(ctx, db, store, 7, []LineInput{
		{ItemID: deskID, Quantity: 2},
		{ItemID: mugID, Quantity: 3},
	})
	require.NoError(t, err)

	err = SetQuantities(ctx, db, store, 7, []LineInput{
		{ItemID: deskID, Quantity: 6},
		{ItemID: mugID, Quantity: 0},
	})
	require.NoError(t, err)

	require.Equal(t, 6, lineFor(t, db, 7, deskID).Quantity)
	require.EqualValues(t, 1, lineCount(t, db, 7))
}

func TestRemoveItemIdempotent(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	itemID := seedItem(t, db, "Desk", 70)

	_, err := AddItem(ctx, db, store, 7, itemID, 2)
	require.NoError(t, err)

	require.NoError(t, RemoveItem(ctx, db, store, 7, itemID))
	require.NoError(t, RemoveItem(ctx, db, store, 7, itemID))
	require.EqualValues(t, 0, lineCount(t, db, 7))
}

func TestClearRemovesOnlyThatCustomer(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	itemID := seedItem(t, db, "Desk", 70)

	_, err := AddItem(ctx, db, store, 7, itemID, 2)
	require.NoError(t, err)
	_, err = AddItem(ctx, db, store, 8, itemID, 1)
	require.NoError(t, err)

	require.NoError(t, Clear(ctx, db, store, 7))
	require.EqualValues(t, 0, lineCount(t, db, 7))
	require.EqualValues(t, 1, lineCount(t, db, 8))
}

func TestListWithDetailsOrderingAndInvalidation(t *testing.T) {
	db := openTestDB(t)
	store := cache.NewMemory()
	ctx := context.Background()
	deskID := seedItem(t, db, "Desk", 70)
	mugID := seedItem(t, db, "Mug", 5)

	_, err := AddItem(ctx, db, store, 7, deskID, 2)
	require.NoError(t, err)

	details, err := ListWithDetails(ctx, db, store, 7)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Equal(t, "Desk", details[0].Name)
	require.Equal(t, 70.0, details[0].UnitPrice)

	// A mutation after the cached read must show up on the next read.
	_, err = AddItem(ctx, db, store, 7, mugID, 1)
	require.NoError(t, err)

	details, err = ListWithDetails(ctx, db, store, 7)
	require.NoError(t, err)
	require.Len(t, details, 2)
	// Most recently created item first.
	require.Equal(t, mugID, details[0].ItemID)
	require.Equal(t, deskID, details[1].ItemID)
}
