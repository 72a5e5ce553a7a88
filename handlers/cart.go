// cart.go - Cart and checkout endpoints

package handlers

import (
	"net/http"

	"go-shop-backend/middleware"
	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Carts  *services.CartService
	Orders *services.OrderService
}

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type RemoveFromCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"` // 0 or omitted removes the whole line
}

// Add puts a product into the caller's cart.
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var input AddToCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Carts.Add(c.Request.Context(), userID, input.ProductID, input.Quantity); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item added to cart"})
}

// Remove takes units of a product out of the caller's cart.
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var input RemoveFromCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Carts.Remove(c.Request.Context(), userID, input.ProductID, input.Quantity); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart updated"})
}

// My returns the caller's cart with line and grand totals.
func (h *CartHandler) My(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	summary, err := h.Carts.View(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Checkout converts the caller's cart into an order.
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	order, err := h.Orders.Checkout(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// OrderHistory lists the caller's orders, newest first.
func (h *CartHandler) OrderHistory(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	orders, err := h.Orders.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
