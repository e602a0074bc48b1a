package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/delacruzjs/wishlists-backend/api/responses"
	"github.com/delacruzjs/wishlists-backend/api/validators"
	"github.com/delacruzjs/wishlists-backend/internal/wishlists"
	"github.com/delacruzjs/wishlists-backend/pkg/logger"
)

type productPayload struct {
	ID         uint   `json:"id"`
	WishlistID uint   `json:"wishlist_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Quantity   *int   `json:"quantity" validate:"required"`
}

func (p productPayload) toInput() wishlists.ProductInput {
	quantity := 0
	if p.Quantity != nil {
		quantity = *p.Quantity
	}
	return wishlists.ProductInput{
		WishlistID: p.WishlistID,
		Name:       p.Name,
		Quantity:   quantity,
	}
}

// ProductList returns the wishlist's products, optionally filtered by exact
// name. An unknown wishlist is a 404 even when the list would be empty.
func ProductList(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wishlistID, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		name := strings.TrimSpace(r.URL.Query().Get("name"))
		dtos, err := svc.ListProducts(ctx, wishlistID, name)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// ProductCreate adds a product to the path's wishlist. A wishlist_id in the
// payload that disagrees with the path is overridden, not rejected.
func ProductCreate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wishlistID, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if logg != nil {
			ctx = logg.WithWishlistID(ctx, wishlistID)
		}

		var payload productPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.CreateProduct(ctx, wishlistID, payload.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteCreated(w,
			fmt.Sprintf("/wishlists/%d/products/%d", wishlistID, dto.ID), dto)
	}
}

func ProductGet(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wishlistID, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		productID, err := validators.ParsePathID(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.GetProduct(ctx, wishlistID, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// ProductUpdate replaces the product's name and quantity. A payload whose
// wishlist_id disagrees with the path is a conflict.
func ProductUpdate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wishlistID, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		productID, err := validators.ParsePathID(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload productPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.UpdateProduct(ctx, wishlistID, productID, payload.toInput())
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// ProductDelete removes the product. Deleting a product that no longer
// exists is a 204, but the wishlist itself must exist.
func ProductDelete(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		wishlistID, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		productID, err := validators.ParsePathID(r, "productId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteProduct(ctx, wishlistID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}
