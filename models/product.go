// product.go - Catalog models

package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"not null;default:0" json:"stock"` // never negative
	ImageURL    string  `json:"image_url"`
	Published   bool    `gorm:"not null;default:true" json:"published"`

	CategoryID      uint          `gorm:"not null" json:"category_id"`
	Category        Category      `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	SellerProfileID uint          `gorm:"not null" json:"seller_profile_id"`
	SellerProfile   SellerProfile `gorm:"foreignKey:SellerProfileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
