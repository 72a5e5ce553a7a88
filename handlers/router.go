// router.go - Route table for the shop API

package handlers

import (
	"go-shop-backend/config"
	"go-shop-backend/metrics"
	"go-shop-backend/middleware"
	"go-shop-backend/models"
	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter wires services and handlers onto a gin engine.
func NewRouter(cfg *config.Config, db *gorm.DB, m *metrics.AppMetrics) *gin.Engine {
	carts := services.NewCartService(db, m)
	orders := services.NewOrderService(db, m)
	sellers := services.NewSellerService(db)

	auth := &AuthHandler{DB: db, Cfg: cfg}
	products := &ProductHandler{DB: db, Sellers: sellers, Metrics: m, UploadDir: cfg.UploadDir}
	categories := &CategoryHandler{DB: db}
	cart := &CartHandler{Carts: carts, Orders: orders}
	profile := &ProfileHandler{DB: db, Sellers: sellers}
	admin := &AdminHandler{DB: db, Sellers: sellers, Orders: orders}

	r := gin.Default()
	r.Use(middleware.RequestMetrics(m))
	r.Static("/uploads", cfg.UploadDir)

	// Public routes
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.GET("/products", products.List)
	r.GET("/products/:id", products.Get)
	r.GET("/categories", categories.List)

	// Authenticated routes
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/cart", cart.My)
		api.POST("/cart/add", cart.Add)
		api.POST("/cart/remove", cart.Remove)
		api.POST("/cart/checkout", cart.Checkout)
		api.GET("/orders", cart.OrderHistory)

		api.GET("/profile/me", profile.Me)
		api.POST("/profile/become-seller", profile.BecomeSeller)

		api.GET("/products/mine", products.Mine)
		api.POST("/products", products.Create)
		api.PUT("/products/:id", products.Update)
		api.DELETE("/products/:id", products.Delete)
	}

	// Admin routes
	adm := r.Group("/admin")
	adm.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(models.RoleAdmin))
	{
		adm.GET("/sellers/pending", admin.PendingSellers)
		adm.POST("/sellers/:id/approve", admin.ApproveSeller)
		adm.POST("/sellers/:id/reject", admin.RejectSeller)
		adm.POST("/categories", admin.CreateCategory)
		adm.PUT("/orders/:id/status", admin.UpdateOrderStatus)
	}

	return r
}
