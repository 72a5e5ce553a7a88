package services

import (
	"path/filepath"
	"testing"

	"go-shop-backend/database"
	"go-shop-backend/metrics"
	"go-shop-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB connects to a fresh sqlite file and migrates the schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.Connect(path))
	return database.DB
}

func seedCatalog(t *testing.T, db *gorm.DB) (models.Category, models.SellerProfile) {
	t.Helper()
	owner := models.User{Email: "seller@example.com", Password: "x", FullName: "Shop Owner"}
	require.NoError(t, db.Create(&owner).Error)
	profile := models.SellerProfile{
		UserID:   owner.ID,
		ShopName: "Test Shop",
		Status:   models.SellerApproved,
	}
	require.NoError(t, db.Create(&profile).Error)
	category := models.Category{Name: "Groceries"}
	require.NoError(t, db.Create(&category).Error)
	return category, profile
}

func seedProduct(t *testing.T, db *gorm.DB, category models.Category, profile models.SellerProfile, name string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{
		Name:            name,
		Price:           price,
		Stock:           stock,
		Published:       true,
		CategoryID:      category.ID,
		SellerProfileID: profile.ID,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedBuyer(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	var buyerRole models.Role
	require.NoError(t, db.Where("name = ?", models.RoleBuyer).First(&buyerRole).Error)
	user := models.User{
		Email:    email,
		Password: "x",
		FullName: "Buyer",
		Roles:    []models.Role{buyerRole},
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func discardMetrics() *metrics.AppMetrics {
	return metrics.Discard()
}
