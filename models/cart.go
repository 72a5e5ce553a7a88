// cart.go - Cart line item model

package models

// CartItem is one line of a user's cart, unique per (user, product).
// UnitPrice is the product price snapshotted when the line was last added to.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	User      User    `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}
