package models

import (
	"time"
)

// Wishlist is the parent aggregate: a named, owned collection of products
// with a join date. Products cascade-delete with their wishlist at the
// storage layer.
type Wishlist struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name       string    `gorm:"column:name;not null"`
	Owner      string    `gorm:"column:owner;not null"`
	DateJoined time.Time `gorm:"column:date_joined;type:date;not null"`
	Products   []Product `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Wishlist) TableName() string {
	return "wishlists"
}

// GetID satisfies the persistence gateway's entity contract.
func (w Wishlist) GetID() uint {
	return w.ID
}
