package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/delacruzjs/wishlists-backend/api/responses"
	"github.com/delacruzjs/wishlists-backend/api/validators"
	"github.com/delacruzjs/wishlists-backend/internal/wishlists"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
	"github.com/delacruzjs/wishlists-backend/pkg/logger"
)

type wishlistPayload struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name" validate:"required"`
	DateJoined string           `json:"date_joined" validate:"required"`
	Owner      string           `json:"owner" validate:"required"`
	Products   []productPayload `json:"products" validate:"omitempty,dive"`
}

func (p wishlistPayload) toInput() (wishlists.WishlistInput, error) {
	date, err := wishlists.ParseDate(p.DateJoined)
	if err != nil {
		return wishlists.WishlistInput{}, pkgerrors.New(pkgerrors.CodeValidation,
			"date_joined must be an ISO date (YYYY-MM-DD)")
	}
	input := wishlists.WishlistInput{
		Name:       p.Name,
		Owner:      p.Owner,
		DateJoined: date,
	}
	for _, product := range p.Products {
		input.Products = append(input.Products, product.toInput())
	}
	return input, nil
}

// WishlistList returns wishlists, optionally narrowed by a single filter.
// Only the highest-priority filter present is applied: owner, then name,
// then date range.
func WishlistList(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		start, err := validators.ParseQueryDate(r, "start")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		end, err := validators.ParseQueryDate(r, "end")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		filters := wishlists.ListFilters{
			Owner: strings.TrimSpace(r.URL.Query().Get("owner")),
			Name:  strings.TrimSpace(r.URL.Query().Get("name")),
			Start: start,
			End:   end,
		}

		dtos, err := svc.ListWishlists(ctx, filters)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dtos)
	}
}

// WishlistCreate stores a new wishlist. Nested products in the payload are
// validated but not persisted; clients add products through the nested
// product endpoints.
func WishlistCreate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload wishlistPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if payload.ID != 0 {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "id must not be set on create"))
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.CreateWishlist(ctx, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteCreated(w, fmt.Sprintf("/wishlists/%d", dto.ID), dto)
	}
}

func WishlistGet(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.GetWishlist(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// WishlistUpdate replaces the wishlist's scalar fields. The id in the path
// wins; products are untouched.
func WishlistUpdate(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload wishlistPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		dto, err := svc.UpdateWishlist(ctx, id, input)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto)
	}
}

// WishlistDelete removes the wishlist and its products. Deleting an unknown
// id still returns 204.
func WishlistDelete(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.DeleteWishlist(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

// WishlistCopy clones a wishlist and its products under fresh ids.
func WishlistCopy(svc wishlists.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := validators.ParsePathID(r, "wishlistId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		if logg != nil {
			ctx = logg.WithWishlistID(ctx, id)
		}

		dto, err := svc.CopyWishlist(ctx, id)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteCreated(w, fmt.Sprintf("/wishlists/%d", dto.ID), dto)
	}
}
