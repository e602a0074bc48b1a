package models

import (
	"time"
)

// Product is a child record belonging to exactly one wishlist.
type Product struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	WishlistID uint      `gorm:"column:wishlist_id;not null;index:products_wishlist_id_idx"`
	Name       string    `gorm:"column:name;not null"`
	Quantity   int       `gorm:"column:quantity;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

// GetID satisfies the persistence gateway's entity contract.
func (p Product) GetID() uint {
	return p.ID
}
