package services

import (
	"context"
	"testing"

	"go-shop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartAndView(t *testing.T) {
	db := setupTestDB(t)
	category, profile := seedCatalog(t, db)
	product := seedProduct(t, db, category, profile, "Milk", 650, 5)
	buyer := seedBuyer(t, db, "buyer@example.com")
	carts := NewCartService(db, discardMetrics())
	ctx := context.Background()

	require.NoError(t, carts.Add(ctx, buyer.ID, product.ID, 2))

	summary, err := carts.View(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, product.ID, summary.Items[0].ProductID)
	assert.Equal(t, "Milk", summary.Items[0].ProductName)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, 650.0, summary.Items[0].UnitPrice)
	assert.Equal(t, 1300.0, summary.TotalPrice)

	// Topping up accumulates on the same line.
	require.NoError(t, carts.Add(ctx, buyer.ID, product.ID, 1))
	summary, err = carts.View(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Quantity)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	category, profile := seedCatalog(t, db)
	product := seedProduct(t, db, category, profile, "Milk", 650, 5)
	buyer := seedBuyer(t, db, "buyer@example.com")
	carts := NewCartService(db, discardMetrics())

	assert.ErrorIs(t, carts.Add(context.Background(), buyer.ID, product.ID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, carts.Add(context.Background(), buyer.ID, product.ID, -3), ErrInvalidQuantity)
}

func TestAddMissingOrUnpublishedProduct(t *testing.T) {
	db := setupTestDB(t)
	category, profile := seedCatalog(t, db)
	buyer := seedBuyer(t, db, "buyer@example.com")
	carts := NewCartService(db, discardMetrics())
	ctx := context.Background()

	assert.ErrorIs(t, carts.Add(ctx, buyer.ID, 9999, 1), ErrProductNotFound)

	hidden := seedProduct(t, db, category, profile, "Hidden", 100, 5)
	require.NoError(t, db.Model(&hidden).Update("published", false).Error)
	assert.ErrorIs(t, carts.Add(ctx, buyer.ID, hidden.ID, 1), ErrProductNotFound)
}

func TestAddBeyondStockLeavesCartUnchanged(t *testing.T) {
	db := setupTestDB(t)
	category, profile := seedCatalog(t, db)
	product := seedProduct(t, db, category, profile, "Bread", 300, 3)
	buyer := seedBuyer(t, db, "buyer@example.com")
	carts := NewCartService(db, discardMetrics())
	ctx := context.Background()

	// Single call over stock.
	var stockErr *StockError
	err := carts.Add(ctx, buyer.ID, product.ID, 4)
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Bread", stockErr.ProductName)

	summary, err := carts.View(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	// Cumulative quantity over stock: 2 then 2 against stock 3.
	require.NoError(t, carts.Add(ctx, buyer.ID, product.ID, 2))
	err = carts.Add(ctx, buyer.ID, product.ID, 2)
	require.ErrorAs(t, err, &stockErr)

	summary, err = carts.View(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)
}

func TestAddRefreshesPriceSnapshot(t *testing.T) {
	db := setupTestDB(t)
	category, profile := seedCatalog(t, db)
	product := seedProduct(t, db, category, profile, "Cheese", 650, 10)
	buyer := seedBuyer(t, db, "buyer@example.com")
	carts := NewCartService(db, discardMetrics())
	ctx := context.Background()

	require.NoError(t, carts.Add(ctx, buyer.ID, product.ID, 1))
	require.NoError(t, db.Model(&product).Update("price", 700).Error)
	require.NoError(t, carts.Add(ctx, buyer.ID, product.ID, 1))

	summary, err := carts.View(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 700.0, summary.Items[0].UnitPrice)
	assert.Equal(t, 1400.0, summary.TotalPrice)
}

func TestRemoveFromCart(t *testing.T) {
	db := setupTestDB(t)
	category, profile := seedCatalog(t, db)
	product := seedProduct(t, db, category, profile, "Milk", 650, 10)
	buyer := seedBuyer(t, db, "buyer@example.com")
	carts := NewCartService(db, discardMetrics())
	ctx := context.Background()

	assert.ErrorIs(t, carts.Remove(ctx, buyer.ID, product.ID, 1), ErrCartItemNotFound)

	// Partial removal decrements the line.
	require.NoError(t, carts.Add(ctx, buyer.ID, product.ID, 3))
	require.NoError(t, carts.Remove(ctx, buyer.ID, product.ID, 1))
	summary, err := carts.View(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)

	// Zero quantity deletes the whole line.
	require.NoError(t, carts.Remove(ctx, buyer.ID, product.ID, 0))
	summary, err = carts.View(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)

	// Removing at or above the line quantity deletes it too.
	require.NoError(t, carts.Add(ctx, buyer.ID, product.ID, 2))
	require.NoError(t, carts.Remove(ctx, buyer.ID, product.ID, 5))
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", buyer.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}
