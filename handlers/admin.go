// admin.go - Admin endpoints: seller review, categories, order status

package handlers

import (
	"net/http"

	"go-shop-backend/models"
	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	DB      *gorm.DB
	Sellers *services.SellerService
	Orders  *services.OrderService
}

type pendingSellerDTO struct {
	ID          uint   `json:"id"`
	ShopName    string `json:"shop_name"`
	Description string `json:"description"`
	UserEmail   string `json:"user_email"`
}

// PendingSellers lists seller applications awaiting review.
func (h *AdminHandler) PendingSellers(c *gin.Context) {
	profiles, err := h.Sellers.Pending(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	out := make([]pendingSellerDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, pendingSellerDTO{
			ID:          p.ID,
			ShopName:    p.ShopName,
			Description: p.Description,
			UserEmail:   p.User.Email,
		})
	}
	c.JSON(http.StatusOK, out)
}

// ApproveSeller approves a pending application and grants the seller role.
func (h *AdminHandler) ApproveSeller(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}
	if err := h.Sellers.Approve(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "seller approved and role assigned"})
}

// RejectSeller rejects a pending application. The user may re-apply.
func (h *AdminHandler) RejectSeller(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}
	if err := h.Sellers.Reject(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "seller application rejected"})
}

type createCategoryInput struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory adds a catalog category.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var input createCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{Name: input.Name}
	if err := h.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "category already exists"})
		return
	}
	c.JSON(http.StatusOK, category)
}

type updateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order to a new status.
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var input updateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Orders.UpdateStatus(c.Request.Context(), id, models.OrderStatus(input.Status)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "order status updated"})
}
