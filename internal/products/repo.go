package products

import (
	"context"

	"github.com/delacruzjs/wishlists-backend/internal/repo"
	"github.com/delacruzjs/wishlists-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates product persistence. The generic gateway supplies
// create/update/delete/find/all; product-specific queries live here.
type Repository struct {
	repo.Gateway[models.Product]
}

// NewRepository constructs a product repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Gateway: repo.NewGateway[models.Product](db)}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Gateway: r.Gateway.WithTx(tx)}
}

// ListByWishlist returns the wishlist's products in association order. A
// non-empty name narrows the result to exact matches.
func (r *Repository) ListByWishlist(ctx context.Context, wishlistID uint, name string) ([]models.Product, error) {
	query := r.DB(ctx).Where("wishlist_id = ?", wishlistID)
	if name != "" {
		query = query.Where("name = ?", name)
	}

	var rows []models.Product
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
