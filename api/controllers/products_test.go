package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/delacruzjs/wishlists-backend/internal/wishlists"
	pkgerrors "github.com/delacruzjs/wishlists-backend/pkg/errors"
)

func TestProductList(t *testing.T) {
	svc := &stubWishlistService{products: []wishlists.ProductDTO{{ID: 1, WishlistID: 2, Name: "socks"}}}
	req := httptest.NewRequest(http.MethodGet, "/wishlists/2/products?name=socks", nil)
	rec := serve(http.MethodGet, "/wishlists/{wishlistId}/products", ProductList(svc, nil), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotWishlistID != 2 {
		t.Fatalf("expected wishlist 2, got %d", svc.gotWishlistID)
	}

	var body []wishlists.ProductDTO
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body) != 1 || body[0].Name != "socks" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestProductCreateUsesPathWishlist(t *testing.T) {
	svc := &stubWishlistService{product: wishlists.ProductDTO{ID: 7, WishlistID: 2, Name: "socks"}}
	body := `{"wishlist_id":99,"name":"socks","quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/wishlists/2/products", strings.NewReader(body))
	rec := serve(http.MethodPost, "/wishlists/{wishlistId}/products", ProductCreate(svc, nil), req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != "/wishlists/2/products/7" {
		t.Fatalf("unexpected Location %q", got)
	}
	if svc.gotWishlistID != 2 {
		t.Fatalf("expected path wishlist 2, got %d", svc.gotWishlistID)
	}
}

func TestProductCreateMissingQuantity(t *testing.T) {
	svc := &stubWishlistService{}
	body := `{"wishlist_id":2,"name":"socks"}`
	req := httptest.NewRequest(http.MethodPost, "/wishlists/2/products", strings.NewReader(body))
	rec := serve(http.MethodPost, "/wishlists/{wishlistId}/products", ProductCreate(svc, nil), req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "quantity is required") {
		t.Fatalf("message should name quantity: %s", rec.Body.String())
	}
}

func TestProductGet(t *testing.T) {
	svc := &stubWishlistService{product: wishlists.ProductDTO{ID: 5, WishlistID: 2, Name: "socks"}}
	req := httptest.NewRequest(http.MethodGet, "/wishlists/2/products/5", nil)
	rec := serve(http.MethodGet, "/wishlists/{wishlistId}/products/{productId}", ProductGet(svc, nil), req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotWishlistID != 2 || svc.gotProductID != 5 {
		t.Fatalf("expected ids (2,5), got (%d,%d)", svc.gotWishlistID, svc.gotProductID)
	}
}

func TestProductUpdateConflict(t *testing.T) {
	svc := &stubWishlistService{err: pkgerrors.New(pkgerrors.CodeConflict,
		"Product wishlist_id '9' does not match wishlist '2'.")}
	body := `{"wishlist_id":9,"name":"socks","quantity":1}`
	req := httptest.NewRequest(http.MethodPut, "/wishlists/2/products/5", strings.NewReader(body))
	rec := serve(http.MethodPut, "/wishlists/{wishlistId}/products/{productId}", ProductUpdate(svc, nil), req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
}

func TestProductDeleteNoContent(t *testing.T) {
	svc := &stubWishlistService{}
	req := httptest.NewRequest(http.MethodDelete, "/wishlists/2/products/5", nil)
	rec := serve(http.MethodDelete, "/wishlists/{wishlistId}/products/{productId}", ProductDelete(svc, nil), req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", rec.Code)
	}
}

func TestProductDeleteMembershipViolation(t *testing.T) {
	svc := &stubWishlistService{err: pkgerrors.New(pkgerrors.CodeValidation,
		"Product with id '5' is not in wishlist '2'.")}
	req := httptest.NewRequest(http.MethodDelete, "/wishlists/2/products/5", nil)
	rec := serve(http.MethodDelete, "/wishlists/{wishlistId}/products/{productId}", ProductDelete(svc, nil), req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(stubPinger{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "OK" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthDatabaseDown(t *testing.T) {
	rec := httptest.NewRecorder()
	handler := Health(stubPinger{err: errors.New("dial tcp: connection refused")}, nil)
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "database unreachable") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}
