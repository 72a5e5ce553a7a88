// handlers_test.go - Shared helpers for handler tests

package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go-shop-backend/config"
	"go-shop-backend/database"
	"go-shop-backend/metrics"
	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestRouter builds the full router against a fresh test database.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Load()
	cfg.DBPath = filepath.Join(t.TempDir(), "test.db")
	cfg.UploadDir = t.TempDir()
	require.NoError(t, database.Connect(cfg.DBPath))

	return NewRouter(cfg, database.DB, metrics.Discard()), database.DB, cfg
}

func createUser(t *testing.T, db *gorm.DB, email string, roleNames ...string) models.User {
	t.Helper()
	var roles []models.Role
	for _, name := range roleNames {
		var role models.Role
		require.NoError(t, db.Where("name = ?", name).First(&role).Error)
		roles = append(roles, role)
	}
	user := models.User{Email: email, Password: "x", FullName: "Test User", Roles: roles}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func bearerToken(t *testing.T, cfg *config.Config, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedTestProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) models.Product {
	t.Helper()
	owner := models.User{Email: name + "-owner@example.com", Password: "x"}
	require.NoError(t, db.Create(&owner).Error)
	profile := models.SellerProfile{UserID: owner.ID, ShopName: name + " Shop", Status: models.SellerApproved}
	require.NoError(t, db.Create(&profile).Error)
	category := models.Category{Name: name + " Category"}
	require.NoError(t, db.Create(&category).Error)

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
