package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// AddItemInput is one line of an add-to-basket batch.
type AddItemInput struct {
	ListingID uuid.UUID `validate:"required"`
	Quantity  int       `validate:"required,min=1"`
}

// UpdateItemInput addresses an existing basket item by its raw id string.
// Malformed ids are tolerated and skipped, so the id is not pre-parsed.
type UpdateItemInput struct {
	ItemID   string
	Quantity int
}

// PlaceOrderInput moves a basket to a placed order.
type PlaceOrderInput struct {
	OrderID   uuid.UUID `validate:"required"`
	ContactID uuid.UUID `validate:"required"`
}

// --- Output DTOs ---

// BasketOutput is a basket snapshot with its computed total.
type BasketOutput struct {
	Order *entity.Order
	Total decimal.Decimal
}

// MutationOutput reports how many rows a tolerant batch mutation touched.
type MutationOutput struct {
	Count int64
}

// OrderOutput pairs an order with its computed total. For partner queries the
// items and total cover only the querying shop's lines.
type OrderOutput struct {
	Order *entity.Order
	Total decimal.Decimal
}

// OrderUsecase defines the basket and order business operations.
type OrderUsecase interface {
	// GetBasket returns the caller's basket. A user without a basket gets an
	// empty snapshot, not an error; nothing is created.
	GetBasket(ctx context.Context, userID uuid.UUID) (*BasketOutput, error)

	// AddItems adds a batch of line items to the caller's basket, creating
	// the basket when absent. The batch is atomic: any invalid or duplicate
	// line rolls back the whole call.
	AddItems(ctx context.Context, userID uuid.UUID, items []AddItemInput) (*BasketOutput, error)

	// UpdateItems sets quantities on existing basket items. Entries with a
	// malformed id or a non-positive quantity are skipped; the count of
	// updated rows is returned.
	UpdateItems(ctx context.Context, userID uuid.UUID, items []UpdateItemInput) (*MutationOutput, error)

	// RemoveItems deletes basket items by raw id strings, ignoring
	// malformed ids and ids outside the caller's basket.
	RemoveItems(ctx context.Context, userID uuid.UUID, itemIDs []string) (*MutationOutput, error)

	// PlaceOrder atomically turns the caller's basket into a placed order
	// attached to one of the caller's delivery contacts, then emits an
	// order-placed event (best effort).
	PlaceOrder(ctx context.Context, userID uuid.UUID, input PlaceOrderInput) (*OrderOutput, error)

	// ListOrders returns the caller's placed orders, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*OrderOutput, error)

	// ListPartnerOrders returns placed orders containing the caller's shop's
	// listings, totals restricted to those lines. orderID uuid.Nil lists all.
	ListPartnerOrders(ctx context.Context, ownerID, orderID uuid.UUID) ([]*OrderOutput, error)
}
