// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrListingNotFound is returned when a listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingFilter narrows a listing search. Zero values mean "no filter".
// Listings of shops that are not accepting orders are always excluded.
type ListingFilter struct {
	ShopID     uuid.UUID
	CategoryID int64
}

// CatalogRepository defines the operations for catalog persistence: the
// idempotent upserts used by feed ingestion and the public read queries.
// Every Upsert* method keys on the natural identifier from the partner feed,
// so re-running ingestion never duplicates rows.
type CatalogRepository interface {
	// UpsertCategory creates or renames a category by its feed-assigned id.
	UpsertCategory(ctx context.Context, category *entity.Category) error

	// LinkShopCategory records that the shop offers the category.
	// Idempotent set-add: linking twice is a no-op.
	LinkShopCategory(ctx context.Context, shopID uuid.UUID, categoryID int64) error

	// UpsertProduct creates or updates a product by its feed-assigned id.
	UpsertProduct(ctx context.Context, product *entity.Product) error

	// UpsertListing creates or overwrites the listing identified by
	// (listing.ShopID, listing.ExternalID), refreshing model, description,
	// quantity, price and price_rrc. The stored row's ID is written back
	// into listing.ID.
	UpsertListing(ctx context.Context, listing *entity.Listing) error

	// UpsertParameter resolves a parameter name to its dictionary id,
	// creating the entry when the name is new.
	UpsertParameter(ctx context.Context, parameter *entity.Parameter) error

	// SetListingParameter creates or replaces the value of one parameter on
	// one listing. At most one row per (listing, parameter) pair survives.
	SetListingParameter(ctx context.Context, listingID uuid.UUID, parameterID int64, value string) error

	// FindCategories lists all categories.
	FindCategories(ctx context.Context) ([]*entity.Category, error)

	// FindProducts lists all products with their categories.
	FindProducts(ctx context.Context) ([]*entity.Product, error)

	// SearchListings returns listings matching the filter, with product,
	// category, shop and parameters resolved.
	SearchListings(ctx context.Context, filter ListingFilter) ([]*entity.Listing, error)
}
