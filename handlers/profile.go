// profile.go - Profile and seller application endpoints

package handlers

import (
	"net/http"

	"go-shop-backend/middleware"
	"go-shop-backend/models"
	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProfileHandler struct {
	DB      *gorm.DB
	Sellers *services.SellerService
}

type BecomeSellerInput struct {
	ShopName    string `json:"shop_name" binding:"required"`
	Description string `json:"description"`
}

type sellerProfileDTO struct {
	ID          uint   `json:"id"`
	ShopName    string `json:"shop_name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func toSellerProfileDTO(p *models.SellerProfile) *sellerProfileDTO {
	if p == nil {
		return nil
	}
	return &sellerProfileDTO{
		ID:          p.ID,
		ShopName:    p.ShopName,
		Description: p.Description,
		Status:      string(p.Status),
	}
}

// Me returns the caller's account, roles and seller profile, if any.
func (h *ProfileHandler) Me(c *gin.Context) {
	user, err := currentUser(c, h.DB)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":          user.Email,
		"full_name":      user.FullName,
		"roles":          user.RoleNames(),
		"seller_profile": toSellerProfileDTO(user.SellerProfile),
	})
}

// BecomeSeller files a seller application for the caller.
func (h *ProfileHandler) BecomeSeller(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var input BecomeSellerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.Sellers.Apply(c.Request.Context(), userID, input.ShopName, input.Description)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "seller application received, awaiting admin approval",
		"profile": toSellerProfileDTO(profile),
	})
}
