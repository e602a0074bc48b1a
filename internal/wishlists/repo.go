package wishlists

import (
	"context"
	"time"

	"github.com/delacruzjs/wishlists-backend/internal/repo"
	"github.com/delacruzjs/wishlists-backend/pkg/db/models"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
	"gorm.io/gorm"
)

// Repository encapsulates wishlist persistence. Reads preload the product
// collection in association order.
type Repository struct {
	repo.Gateway[models.Wishlist]
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Gateway: repo.NewGateway[models.Wishlist](db, "Products")}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Gateway: r.Gateway.WithTx(tx)}
}

// FindByName returns all wishlists with the given name, exact match,
// case-sensitive.
func (r *Repository) FindByName(ctx context.Context, name string) ([]models.Wishlist, error) {
	return r.findWhere(ctx, "name = ?", name)
}

// FindByOwner returns all wishlists belonging to the owner, exact match,
// case-sensitive.
func (r *Repository) FindByOwner(ctx context.Context, owner string) ([]models.Wishlist, error) {
	return r.findWhere(ctx, "owner = ?", owner)
}

// FilterByDateRange returns wishlists whose join date falls in [start, end].
// Either bound may be nil (unbounded). An inverted range is a validation
// error, never an empty result.
func (r *Repository) FilterByDateRange(ctx context.Context, start, end *time.Time) ([]models.Wishlist, error) {
	if start != nil && end != nil && start.After(*end) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start date must not be after end date")
	}

	query := r.DB(ctx).Preload("Products")
	if start != nil {
		query = query.Where("date_joined >= ?", *start)
	}
	if end != nil {
		query = query.Where("date_joined <= ?", *end)
	}

	var rows []models.Wishlist
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) findWhere(ctx context.Context, condition string, value any) ([]models.Wishlist, error) {
	var rows []models.Wishlist
	err := r.DB(ctx).
		Preload("Products").
		Where(condition, value).
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
