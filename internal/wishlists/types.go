package wishlists

import (
	"time"

	"github.com/delacruzjs/wishlists-backend/pkg/db/models"
)

// DateLayout is the wire format for wishlist join dates.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// WishlistDTO is the canonical wire representation of a wishlist.
type WishlistDTO struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	DateJoined string       `json:"date_joined"`
	Owner      string       `json:"owner"`
	Products   []ProductDTO `json:"products"`
}

// ProductDTO is the canonical wire representation of a product.
type ProductDTO struct {
	ID         uint   `json:"id"`
	WishlistID uint   `json:"wishlist_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// WishlistInput carries validated wishlist fields into the service layer.
// Nested products are attached in order but persisted only when the caller
// persists them individually.
type WishlistInput struct {
	Name       string
	Owner      string
	DateJoined time.Time
	Products   []ProductInput
}

// ProductInput carries validated product fields into the service layer.
type ProductInput struct {
	WishlistID uint
	Name       string
	Quantity   int
}

// ToModel builds an unpersisted wishlist from the input.
func (in WishlistInput) ToModel() models.Wishlist {
	wishlist := models.Wishlist{
		Name:       in.Name,
		Owner:      in.Owner,
		DateJoined: in.DateJoined,
	}
	for _, product := range in.Products {
		wishlist.Products = append(wishlist.Products, models.Product{
			WishlistID: product.WishlistID,
			Name:       product.Name,
			Quantity:   product.Quantity,
		})
	}
	return wishlist
}

// ToWishlistDTO serializes a wishlist with its product collection. The
// products array is always present, never null.
func ToWishlistDTO(wishlist models.Wishlist) WishlistDTO {
	dto := WishlistDTO{
		ID:         wishlist.ID,
		Name:       wishlist.Name,
		DateJoined: wishlist.DateJoined.Format(DateLayout),
		Owner:      wishlist.Owner,
		Products:   make([]ProductDTO, 0, len(wishlist.Products)),
	}
	for _, product := range wishlist.Products {
		dto.Products = append(dto.Products, ToProductDTO(product))
	}
	return dto
}

// ToProductDTO serializes a single product.
func ToProductDTO(product models.Product) ProductDTO {
	return ProductDTO{
		ID:         product.ID,
		WishlistID: product.WishlistID,
		Name:       product.Name,
		Quantity:   product.Quantity,
	}
}

// ToWishlistDTOs serializes a result set preserving storage order.
func ToWishlistDTOs(rows []models.Wishlist) []WishlistDTO {
	dtos := make([]WishlistDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, ToWishlistDTO(row))
	}
	return dtos
}

// ToProductDTOs serializes a product result set preserving storage order.
func ToProductDTOs(rows []models.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, ToProductDTO(row))
	}
	return dtos
}
