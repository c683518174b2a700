package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// IngestFeedInput carries a parsed-ready feed document body. Exactly one of
// URL or Body is set; the delivery layer resolves URL fetching so the
// ingestion logic stays off the network.
type IngestFeedInput struct {
	OwnerID uuid.UUID
	Body    []byte
}

// SearchListingsInput narrows the public listing search. Zero values mean
// "no filter".
type SearchListingsInput struct {
	ShopID     uuid.UUID
	CategoryID int64
}

// --- Output DTOs ---

// IngestFeedOutput reports what ingestion touched.
type IngestFeedOutput struct {
	Shop       *entity.Shop
	Categories int
	Listings   int
}

// CatalogUsecase defines the business operations around partner catalogs:
// ingestion on the partner side, browsing and search on the public side.
type CatalogUsecase interface {
	// IngestFeed validates and applies a partner YAML feed in one
	// transaction. Requires the shop role.
	IngestFeed(ctx context.Context, input IngestFeedInput) (*IngestFeedOutput, error)

	// GetPartnerState reports whether the caller's shop accepts orders.
	GetPartnerState(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// SetPartnerState flips order intake for the caller's shop.
	SetPartnerState(ctx context.Context, ownerID uuid.UUID, accepting bool) (*entity.Shop, error)

	// ListShops lists every registered shop.
	ListShops(ctx context.Context) ([]*entity.Shop, error)

	// ListCategories lists all known categories.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// ListProducts lists all known products with categories resolved.
	ListProducts(ctx context.Context) ([]*entity.Product, error)

	// SearchListings returns purchasable listings matching the filter.
	SearchListings(ctx context.Context, input SearchListingsInput) ([]*entity.Listing, error)
}
