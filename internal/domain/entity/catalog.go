// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Shop is a partner's storefront. Exactly one shop exists per owning user;
// it is created lazily the first time the owner uploads a catalog feed.
type Shop struct {
	ID              uuid.UUID
	Name            string
	URL             string
	AcceptingOrders bool      // When false the shop's listings are hidden from search.
	OwnerID         uuid.UUID // The shop-role user that administers this shop.
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Category groups products. IDs are assigned by the partner feed, not the
// database, so the same category keeps its identity across shops.
type Category struct {
	ID   int64
	Name string
}

// Product is a logical product independent of any shop. Its ID comes from the
// partner feed; several shops may list the same product.
type Product struct {
	ID         int64
	Name       string
	CategoryID int64
	Category   *Category // Populated on catalog reads, nil otherwise.
}

// Listing is one shop's offer of one product, with the shop's own price and
// stock. (ShopID, ExternalID) uniquely identifies a listing; re-ingesting a
// feed overwrites the mutable fields instead of creating a second row.
type Listing struct {
	ID          uuid.UUID
	ExternalID  int64 // The partner's catalog id for this good.
	ProductID   int64
	ShopID      uuid.UUID
	Model       string
	Description string
	Quantity    int
	Price       decimal.Decimal // Sale price; order totals are computed from this.
	PriceRRC    decimal.Decimal // Recommended retail price, informational only.
	Product     *Product
	Shop        *Shop
	Parameters  []ListingParameter
}

// Parameter is a global dictionary entry for an attribute name ("color", "size").
type Parameter struct {
	ID   int64
	Name string
}

// ListingParameter attaches an attribute value to a specific listing.
// At most one row exists per (listing, parameter) pair.
type ListingParameter struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	Name      string // Resolved parameter name.
	Value     string
}
