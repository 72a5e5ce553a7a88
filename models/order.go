// order.go - Order models, immutable after checkout

package models

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPaid, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	UserID     uint        `gorm:"not null" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Status     OrderStatus `gorm:"not null;default:'pending'" json:"status"`
	TotalPrice float64     `gorm:"not null" json:"total_price"`
	CreatedAt  time.Time   `json:"created_at"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`
}

// OrderItem is a frozen snapshot of a cart line at checkout time.
// Product name and unit price are copied so later catalog edits
// never change a placed order.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `gorm:"not null" json:"order_id"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"not null" json:"product_name"`
	UnitPrice   float64 `gorm:"not null" json:"unit_price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
}
