// database.go - Database connection, migration and seeding

package database

import (
	"go-shop-backend/config"
	"go-shop-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle, set by Connect.
var DB *gorm.DB

// Connect opens the SQLite database, runs migrations and seeds the
// role table plus the optional default admin account.
func Connect(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.SellerProfile{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return err
	}

	if err := seedRoles(); err != nil {
		return err
	}
	return createDefaultAdmin()
}

func seedRoles() error {
	for _, name := range []string{models.RoleBuyer, models.RoleSeller, models.RoleAdmin} {
		role := models.Role{Name: name}
		if err := DB.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

// createDefaultAdmin creates an admin account from the environment if
// configured and no admin user exists yet. Credentials are never hardcoded.
func createDefaultAdmin() error {
	cfg := config.Load()
	if !cfg.CreateAdmin || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Joins("JOIN roles ON roles.id = user_roles.role_id").
		Where("roles.name = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	var adminRole models.Role
	if err := DB.Where("name = ?", models.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	admin := models.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		FullName: "Administrator",
		Roles:    []models.Role{adminRole},
	}
	return DB.Create(&admin).Error
}
