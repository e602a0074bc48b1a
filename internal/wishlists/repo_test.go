package wishlists

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/delacruzjs/wishlists-backend/internal/products"
	"github.com/delacruzjs/wishlists-backend/pkg/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	wishlists := `
CREATE TABLE IF NOT EXISTS wishlists (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  owner TEXT NOT NULL,
  date_joined DATE NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`
	productsDDL := `
CREATE TABLE IF NOT EXISTS products (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  wishlist_id INTEGER NOT NULL REFERENCES wishlists(id) ON DELETE CASCADE,
  name TEXT NOT NULL,
  quantity INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(wishlists).Error)
	require.NoError(t, db.Exec(productsDDL).Error)
	return db
}

func seedWishlist(t *testing.T, repo *Repository, name, owner string, joined time.Time) models.Wishlist {
	t.Helper()

	wishlist := models.Wishlist{Name: name, Owner: owner, DateJoined: joined}
	require.NoError(t, repo.Create(context.Background(), &wishlist))
	return wishlist
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFindByNameExactMatch(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	seedWishlist(t, repo, "books", "ana", date(2024, 1, 5))
	seedWishlist(t, repo, "books", "ben", date(2024, 2, 5))
	seedWishlist(t, repo, "Books", "ana", date(2024, 3, 5))

	rows, err := repo.FindByName(ctx, "books")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.FindByName(ctx, "BOOKS")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestFindByOwnerExactMatch(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	seedWishlist(t, repo, "books", "ana", date(2024, 1, 5))
	seedWishlist(t, repo, "games", "ana", date(2024, 2, 5))
	seedWishlist(t, repo, "tools", "ben", date(2024, 3, 5))

	rows, err := repo.FindByOwner(ctx, "ana")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestFilterByDateRange(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	seedWishlist(t, repo, "jan", "ana", date(2024, 1, 15))
	seedWishlist(t, repo, "feb", "ana", date(2024, 2, 15))
	seedWishlist(t, repo, "mar", "ana", date(2024, 3, 15))

	start := date(2024, 2, 1)
	end := date(2024, 2, 28)
	rows, err := repo.FilterByDateRange(ctx, &start, &end)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "feb", rows[0].Name)

	rows, err = repo.FilterByDateRange(ctx, &start, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	rows, err = repo.FilterByDateRange(ctx, nil, &end)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestFilterByDateRangeInvertedBoundsFails(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	start := date(2024, 3, 1)
	end := date(2024, 1, 1)
	rows, err := repo.FilterByDateRange(context.Background(), &start, &end)
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.Contains(t, err.Error(), "start date")
}

func TestFindPreloadsProductsInAssociationOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	productRepo := products.NewRepository(db)
	ctx := context.Background()

	wishlist := seedWishlist(t, repo, "gifts", "ana", date(2024, 1, 1))
	for _, name := range []string{"first", "second", "third"} {
		product := models.Product{WishlistID: wishlist.ID, Name: name, Quantity: 1}
		require.NoError(t, productRepo.Create(ctx, &product))
	}

	found, err := repo.Find(ctx, wishlist.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Products, 3)
	assert.Equal(t, "first", found.Products[0].Name)
	assert.Equal(t, "third", found.Products[2].Name)
}

func TestDeleteWishlistCascadesToProducts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	productRepo := products.NewRepository(db)
	ctx := context.Background()

	wishlist := seedWishlist(t, repo, "doomed", "ana", date(2024, 1, 1))
	product := models.Product{WishlistID: wishlist.ID, Name: "orphan-to-be", Quantity: 2}
	require.NoError(t, productRepo.Create(ctx, &product))

	require.NoError(t, repo.Delete(ctx, &wishlist))

	gone, err := productRepo.Find(ctx, product.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
