package wishlists

import (
	"context"
	"time"

	"github.com/delacruzjs/wishlists-backend/internal/products"
	"github.com/delacruzjs/wishlists-backend/pkg/db/models"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
	"gorm.io/gorm"
)

// CopyNameSuffix is appended to the source wishlist's name on copy.
const CopyNameSuffix = " COPY"

// ListFilters selects at most one wishlist filter. Priority order:
// owner, then name, then date range; everything else returns all rows.
type ListFilters struct {
	Owner string
	Name  string
	Start *time.Time
	End   *time.Time
}

// TxRunner executes a function inside one storage transaction. Satisfied by
// *db.Client.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	WishlistRepo *Repository
	ProductRepo  *products.Repository
	DB           TxRunner
}

// Service exposes business rules for wishlist and product management.
type Service interface {
	ListWishlists(ctx context.Context, filters ListFilters) ([]WishlistDTO, error)
	GetWishlist(ctx context.Context, id uint) (WishlistDTO, error)
	CreateWishlist(ctx context.Context, input WishlistInput) (WishlistDTO, error)
	UpdateWishlist(ctx context.Context, id uint, input WishlistInput) (WishlistDTO, error)
	DeleteWishlist(ctx context.Context, id uint) error
	CopyWishlist(ctx context.Context, id uint) (WishlistDTO, error)

	ListProducts(ctx context.Context, wishlistID uint, name string) ([]ProductDTO, error)
	CreateProduct(ctx context.Context, wishlistID uint, input ProductInput) (ProductDTO, error)
	GetProduct(ctx context.Context, wishlistID, productID uint) (ProductDTO, error)
	UpdateProduct(ctx context.Context, wishlistID, productID uint, input ProductInput) (ProductDTO, error)
	DeleteProduct(ctx context.Context, wishlistID, productID uint) error
}

type service struct {
	wishlistRepo *Repository
	productRepo  *products.Repository
	db           TxRunner
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.WishlistRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
	}
	if params.ProductRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product repo is required")
	}
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "db client is required")
	}
	return &service{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		db:           params.DB,
	}, nil
}

// ListWishlists applies the first matching filter and returns the result.
func (s *service) ListWishlists(ctx context.Context, filters ListFilters) ([]WishlistDTO, error) {
	var (
		rows []models.Wishlist
		err  error
	)

	switch {
	case filters.Owner != "":
		rows, err = s.wishlistRepo.FindByOwner(ctx, filters.Owner)
	case filters.Name != "":
		rows, err = s.wishlistRepo.FindByName(ctx, filters.Name)
	case filters.Start != nil || filters.End != nil:
		rows, err = s.wishlistRepo.FilterByDateRange(ctx, filters.Start, filters.End)
	default:
		rows, err = s.wishlistRepo.All(ctx)
	}
	if err != nil {
		return nil, wrapStorageErr(err, "list wishlists")
	}
	return ToWishlistDTOs(rows), nil
}

func (s *service) GetWishlist(ctx context.Context, id uint) (WishlistDTO, error) {
	wishlist, err := s.loadWishlist(ctx, id)
	if err != nil {
		return WishlistDTO{}, err
	}
	return ToWishlistDTO(*wishlist), nil
}

// CreateWishlist persists the wishlist scalars. Nested products in the
// input are not cascade-persisted; the response reflects durable state.
func (s *service) CreateWishlist(ctx context.Context, input WishlistInput) (WishlistDTO, error) {
	wishlist := input.ToModel()
	if err := s.wishlistRepo.Create(ctx, &wishlist); err != nil {
		return WishlistDTO{}, wrapStorageErr(err, "create wishlist")
	}
	wishlist.Products = nil
	return ToWishlistDTO(wishlist), nil
}

// UpdateWishlist replaces all scalar fields from the input. The
// server-assigned id is preserved regardless of the payload.
func (s *service) UpdateWishlist(ctx context.Context, id uint, input WishlistInput) (WishlistDTO, error) {
	wishlist, err := s.loadWishlist(ctx, id)
	if err != nil {
		return WishlistDTO{}, err
	}

	wishlist.Name = input.Name
	wishlist.Owner = input.Owner
	wishlist.DateJoined = input.DateJoined

	if err := s.wishlistRepo.Update(ctx, wishlist); err != nil {
		return WishlistDTO{}, wrapStorageErr(err, "update wishlist")
	}
	return ToWishlistDTO(*wishlist), nil
}

// DeleteWishlist removes the wishlist; its products cascade at the storage
// layer. Deleting an unknown id is not an error.
func (s *service) DeleteWishlist(ctx context.Context, id uint) error {
	wishlist, err := s.wishlistRepo.Find(ctx, id)
	if err != nil {
		return wrapStorageErr(err, "load wishlist")
	}
	if wishlist == nil {
		return nil
	}
	if err := s.wishlistRepo.Delete(ctx, wishlist); err != nil {
		return wrapStorageErr(err, "delete wishlist")
	}
	return nil
}

// CopyWishlist clones the source wishlist under a fresh id. The copy keeps
// the owner, takes the source name with the COPY suffix, resets the join
// date to today, and re-creates every product under the new id. Parent and
// children are created in one transaction so a child failure rolls the whole
// copy back.
func (s *service) CopyWishlist(ctx context.Context, id uint) (WishlistDTO, error) {
	source, err := s.loadWishlist(ctx, id)
	if err != nil {
		return WishlistDTO{}, err
	}

	duplicate := models.Wishlist{
		Name:       source.Name + CopyNameSuffix,
		Owner:      source.Owner,
		DateJoined: time.Now().UTC().Truncate(24 * time.Hour),
	}

	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		wishlistRepo := s.wishlistRepo.WithTx(tx)
		productRepo := s.productRepo.WithTx(tx)

		if err := wishlistRepo.Create(ctx, &duplicate); err != nil {
			return err
		}
		for _, product := range source.Products {
			clone := models.Product{
				WishlistID: duplicate.ID,
				Name:       product.Name,
				Quantity:   product.Quantity,
			}
			if err := productRepo.Create(ctx, &clone); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return WishlistDTO{}, wrapStorageErr(err, "copy wishlist")
	}

	created, err := s.wishlistRepo.Find(ctx, duplicate.ID)
	if err != nil {
		return WishlistDTO{}, wrapStorageErr(err, "load copied wishlist")
	}
	return ToWishlistDTO(*created), nil
}

func (s *service) ListProducts(ctx context.Context, wishlistID uint, name string) ([]ProductDTO, error) {
	if _, err := s.loadWishlist(ctx, wishlistID); err != nil {
		return nil, err
	}
	rows, err := s.productRepo.ListByWishlist(ctx, wishlistID, name)
	if err != nil {
		return nil, wrapStorageErr(err, "list products")
	}
	return ToProductDTOs(rows), nil
}

// CreateProduct stores a product under the path's wishlist. The path id wins
// over any wishlist_id carried in the payload. The parent wishlist is
// updated afterwards to refresh derived state.
func (s *service) CreateProduct(ctx context.Context, wishlistID uint, input ProductInput) (ProductDTO, error) {
	wishlist, err := s.loadWishlist(ctx, wishlistID)
	if err != nil {
		return ProductDTO{}, err
	}

	product := models.Product{
		WishlistID: wishlistID,
		Name:       input.Name,
		Quantity:   input.Quantity,
	}
	if err := s.productRepo.Create(ctx, &product); err != nil {
		return ProductDTO{}, wrapStorageErr(err, "create product")
	}
	if err := s.wishlistRepo.Update(ctx, wishlist); err != nil {
		return ProductDTO{}, wrapStorageErr(err, "refresh wishlist")
	}
	return ToProductDTO(product), nil
}

func (s *service) GetProduct(ctx context.Context, wishlistID, productID uint) (ProductDTO, error) {
	product, err := s.loadMemberProduct(ctx, wishlistID, productID)
	if err != nil {
		return ProductDTO{}, err
	}
	return ToProductDTO(*product), nil
}

// UpdateProduct replaces the product's name and quantity. A payload whose
// wishlist_id disagrees with the path is rejected as a conflict, never
// silently rehomed.
func (s *service) UpdateProduct(ctx context.Context, wishlistID, productID uint, input ProductInput) (ProductDTO, error) {
	product, err := s.loadMemberProduct(ctx, wishlistID, productID)
	if err != nil {
		return ProductDTO{}, err
	}
	if input.WishlistID != wishlistID {
		return ProductDTO{}, pkgerrors.Newf(pkgerrors.CodeConflict,
			"Product wishlist_id '%d' does not match wishlist '%d'.", input.WishlistID, wishlistID)
	}

	product.Name = input.Name
	product.Quantity = input.Quantity

	if err := s.productRepo.Update(ctx, product); err != nil {
		return ProductDTO{}, wrapStorageErr(err, "update product")
	}
	return ToProductDTO(*product), nil
}

// DeleteProduct removes the product. An unknown product id yields success
// (idempotent delete), but an unknown wishlist or a product belonging to a
// different wishlist is still an error.
func (s *service) DeleteProduct(ctx context.Context, wishlistID, productID uint) error {
	if _, err := s.loadWishlist(ctx, wishlistID); err != nil {
		return err
	}
	product, err := s.productRepo.Find(ctx, productID)
	if err != nil {
		return wrapStorageErr(err, "load product")
	}
	if product == nil {
		return nil
	}
	if product.WishlistID != wishlistID {
		return pkgerrors.Newf(pkgerrors.CodeValidation,
			"Product with id '%d' is not in wishlist '%d'.", productID, wishlistID)
	}
	if err := s.productRepo.Delete(ctx, product); err != nil {
		return wrapStorageErr(err, "delete product")
	}
	return nil
}

func (s *service) loadWishlist(ctx context.Context, id uint) (*models.Wishlist, error) {
	wishlist, err := s.wishlistRepo.Find(ctx, id)
	if err != nil {
		return nil, wrapStorageErr(err, "load wishlist")
	}
	if wishlist == nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "Wishlist with id '%d' was not found.", id)
	}
	return wishlist, nil
}

func (s *service) loadMemberProduct(ctx context.Context, wishlistID, productID uint) (*models.Product, error) {
	if _, err := s.loadWishlist(ctx, wishlistID); err != nil {
		return nil, err
	}
	product, err := s.productRepo.Find(ctx, productID)
	if err != nil {
		return nil, wrapStorageErr(err, "load product")
	}
	if product == nil {
		return nil, pkgerrors.Newf(pkgerrors.CodeNotFound, "Product with id '%d' was not found.", productID)
	}
	if product.WishlistID != wishlistID {
		return nil, pkgerrors.Newf(pkgerrors.CodeValidation,
			"Product with id '%d' is not in wishlist '%d'.", productID, wishlistID)
	}
	return product, nil
}

func wrapStorageErr(err error, op string) error {
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, op)
}
