// product.go - Catalog endpoints and seller product management

package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"go-shop-backend/metrics"
	"go-shop-backend/middleware"
	"go-shop-backend/models"
	"go-shop-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB        *gorm.DB
	Sellers   *services.SellerService
	Metrics   *metrics.AppMetrics
	UploadDir string
}

type ProductDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Stock        int     `json:"stock"`
	ImageURL     string  `json:"image_url"`
	CategoryName string  `json:"category_name"`
	ShopName     string  `json:"shop_name"`
}

type productForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description"`
	Price       float64 `form:"price" binding:"required,gte=0"`
	Stock       int     `form:"stock" binding:"gte=0"`
	CategoryID  uint    `form:"category_id" binding:"required"`
	ImageURL    string  `form:"image_url"`
}

func toProductDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		ImageURL:     p.ImageURL,
		CategoryName: p.Category.Name,
		ShopName:     p.SellerProfile.ShopName,
	}
}

// List returns all published products.
func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Preload("Category").Preload("SellerProfile").
		Where("published = ?", true).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// Get returns one published product by id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var product models.Product
	err := h.DB.Preload("Category").Preload("SellerProfile").
		Where("id = ? AND published = ?", id, true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrProductNotFound.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.Metrics.ProductsViewed.Add(c.Request.Context(), 1,
		metric.WithAttributes(h.Metrics.WithService([]attribute.KeyValue{
			attribute.Int64("product_id", int64(product.ID)),
		})...))
	c.JSON(http.StatusOK, toProductDTO(product))
}

// Mine lists the approved seller's own products, published or not.
func (h *ProductHandler) Mine(c *gin.Context) {
	profile, err := h.approvedSeller(c)
	if err != nil {
		return
	}

	var products []models.Product
	if err := h.DB.Preload("Category").Preload("SellerProfile").
		Where("seller_profile_id = ?", profile.ID).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, toProductDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// Create adds a product for the approved seller. Accepts multipart form
// data with an optional image file.
func (h *ProductHandler) Create(c *gin.Context) {
	profile, err := h.approvedSeller(c)
	if err != nil {
		return
	}

	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var category models.Category
	if err := h.DB.First(&category, form.CategoryID).Error; err != nil {
		abortWithServiceError(c, services.ErrCategoryNotFound)
		return
	}

	imageURL := form.ImageURL
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = h.saveImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
			return
		}
	}

	product := models.Product{
		Name:            form.Name,
		Description:     form.Description,
		Price:           form.Price,
		Stock:           form.Stock,
		ImageURL:        imageURL,
		Published:       true,
		CategoryID:      form.CategoryID,
		SellerProfileID: profile.ID,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product created", "id": product.ID})
}

// Update edits one of the seller's own products.
func (h *ProductHandler) Update(c *gin.Context) {
	profile, err := h.approvedSeller(c)
	if err != nil {
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrProductNotFound.Error()})
		return
	}
	if product.SellerProfileID != profile.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not own this product"})
		return
	}

	var form productForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var category models.Category
	if err := h.DB.First(&category, form.CategoryID).Error; err != nil {
		abortWithServiceError(c, services.ErrCategoryNotFound)
		return
	}

	product.Name = form.Name
	product.Description = form.Description
	product.Price = form.Price
	product.Stock = form.Stock
	product.CategoryID = form.CategoryID
	if form.ImageURL != "" {
		product.ImageURL = form.ImageURL
	}
	if file, err := c.FormFile("image"); err == nil {
		url, err := h.saveImage(c, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store image"})
			return
		}
		product.ImageURL = url
	}

	if err := h.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// Delete removes a product. Allowed for the owning seller or an admin.
func (h *ProductHandler) Delete(c *gin.Context) {
	user, err := currentUser(c, h.DB)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrProductNotFound.Error()})
		return
	}

	isAdmin := user.HasRole(models.RoleAdmin)
	isOwner := user.SellerProfile != nil && user.SellerProfile.ID == product.SellerProfileID
	if !isAdmin && !isOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "you may not delete this product"})
		return
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// approvedSeller resolves the caller to an approved seller profile,
// writing the error response itself on failure.
func (h *ProductHandler) approvedSeller(c *gin.Context) (*models.SellerProfile, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return nil, errNotAuthenticated
	}
	profile, err := h.Sellers.ApprovedProfile(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return nil, err
	}
	return profile, nil
}

// saveImage stores an uploaded file under the uploads directory and
// returns the relative URL it will be served from.
func (h *ProductHandler) saveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := filepath.Join(h.UploadDir, "products")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/products/" + name, nil
}
