package handlers

import (
	"errors"
	"strconv"

	"go-shop-backend/middleware"
	"go-shop-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errNotAuthenticated = errors.New("not authenticated")

// currentUser loads the authenticated user with roles and seller profile.
func currentUser(c *gin.Context, db *gorm.DB) (*models.User, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return nil, errNotAuthenticated
	}
	var user models.User
	if err := db.Preload("Roles").Preload("SellerProfile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
