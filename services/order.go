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

// OrderService converts carts into orders and serves order reads.
type OrderService struct {
	db      *gorm.DB
	metrics *metrics.AppMetrics
}

func NewOrderService(db *gorm.DB, m *metrics.AppMetrics) *OrderService {
	return &OrderService{db: db, metrics: m}
}

// Checkout turns the user's cart into an order inside one transaction:
// every line is re-validated, stock is decremented with a conditional
// UPDATE guarded by stock >= quantity, the order is written with frozen
// line snapshots, and the cart is cleared. The first failing line rolls
// the whole transaction back, so there is never a partial checkout and
// concurrent checkouts cannot oversell a product.
func (s *OrderService) Checkout(ctx context.Context, userID uint) (*models.Order, error) {
	var order models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").
			Where("user_id = ?", userID).
			Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		order = models.Order{UserID: userID, Status: models.OrderPending}
		for _, item := range items {
			if !item.Product.Published {
				return &UnavailableError{ProductName: item.Product.Name}
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &StockError{ProductName: item.Product.Name}
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID:   item.ProductID,
				ProductName: item.Product.Name,
				UnitPrice:   item.UnitPrice,
				Quantity:    item.Quantity,
			})
			order.TotalPrice += item.UnitPrice * float64(item.Quantity)
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}

	attrs := s.metrics.WithService([]attribute.KeyValue{
		attribute.String("order_status", string(order.Status)),
	})
	s.metrics.OrdersCreated.Add(ctx, 1, metric.WithAttributes(attrs...))
	s.metrics.RevenueTotal.Add(ctx, order.TotalPrice, metric.WithAttributes(attrs...))
	s.metrics.CartItemsCount.Record(ctx, 0, metric.WithAttributes(s.metrics.WithService([]attribute.KeyValue{
		attribute.Int64("user_id", int64(userID)),
	})...))

	return &order, nil
}

// ListForUser returns the user's orders with items, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus moves an order to the given status (admin operation).
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uint, status models.OrderStatus) error {
	if !models.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	var order models.Order
	err := s.db.WithContext(ctx).First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Model(&order).
		Update("status", status).Error
}
