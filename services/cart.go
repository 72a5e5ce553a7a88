package services

import (
	"context"
	"errors"

	"go-shop-backend/metrics"
	"go-shop-backend/models"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"gorm.io/gorm"
)

// CartService handles cart line mutations and reads.
type CartService struct {
	db      *gorm.DB
	metrics *metrics.AppMetrics
}

func NewCartService(db *gorm.DB, m *metrics.AppMetrics) *CartService {
	return &CartService{db: db, metrics: m}
}

// CartLine is one cart row joined with live product data.
type CartLine struct {
	ProductID   uint    `json:"product_id"`
	ProductName string  `json:"product_name"`
	ImageURL    string  `json:"image_url"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"line_total"`
}

// CartSummary is the full cart view for a user.
type CartSummary struct {
	Items      []CartLine `json:"items"`
	TotalPrice float64    `json:"total_price"`
}

// Add puts quantity units of a product into the user's cart, topping up an
// existing line. The cumulative quantity may never exceed the product's
// current stock. The line's price snapshot is refreshed to the product's
// current price on every add; existing units keep the old price only until
// the next top-up (original storefront behavior, kept as-is).
func (s *CartService) Add(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	var product models.Product
	err := s.db.WithContext(ctx).
		Where("id = ? AND published = ?", productID, true).
		First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}

	var item models.CartItem
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if quantity > product.Stock {
			return &StockError{ProductName: product.Name}
		}
		item = models.CartItem{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		}
		if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		newQuantity := item.Quantity + quantity
		if newQuantity > product.Stock {
			return &StockError{ProductName: product.Name}
		}
		item.Quantity = newQuantity
		item.UnitPrice = product.Price
		if err := s.db.WithContext(ctx).Save(&item).Error; err != nil {
			return err
		}
	}

	s.recordCartSize(ctx, userID)
	return nil
}

// Remove takes quantity units of a product out of the cart. A quantity of
// zero or anything at or above the line's current quantity deletes the line.
func (s *CartService) Remove(ctx context.Context, userID, productID uint, quantity int) error {
	var item models.CartItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCartItemNotFound
	}
	if err != nil {
		return err
	}

	if quantity <= 0 || quantity >= item.Quantity {
		err = s.db.WithContext(ctx).Delete(&item).Error
	} else {
		item.Quantity -= quantity
		err = s.db.WithContext(ctx).Save(&item).Error
	}
	if err != nil {
		return err
	}

	s.recordCartSize(ctx, userID)
	return nil
}

// View returns the user's cart joined with live product name and image.
// Line totals use the snapshotted unit price, not the live one.
func (s *CartService) View(ctx context.Context, userID uint) (*CartSummary, error) {
	var items []models.CartItem
	if err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}

	summary := &CartSummary{Items: make([]CartLine, 0, len(items))}
	for _, item := range items {
		line := CartLine{
			ProductID:   item.ProductID,
			ProductName: item.Product.Name,
			ImageURL:    item.Product.ImageURL,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.UnitPrice * float64(item.Quantity),
		}
		summary.Items = append(summary.Items, line)
		summary.TotalPrice += line.LineTotal
	}
	return summary, nil
}

func (s *CartService) recordCartSize(ctx context.Context, userID uint) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return
	}
	attrs := s.metrics.WithService([]attribute.KeyValue{
		attribute.Int64("user_id", int64(userID)),
	})
	s.metrics.CartItemsCount.Record(ctx, count, metric.WithAttributes(attrs...))
}
