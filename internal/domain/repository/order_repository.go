// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrBasketNotFound is returned when the user has no basket-status order.
	ErrBasketNotFound = errors.New("basket not found")
	// ErrDuplicateOrderItem is returned when the basket already holds a line
	// item for the same listing.
	ErrDuplicateOrderItem = errors.New("order item for this listing already exists")
)

// OrderRepository defines the operations for basket and order persistence.
type OrderRepository interface {
	// FindBasket retrieves the user's basket-status order with items,
	// listings, products and parameters resolved. Returns ErrBasketNotFound
	// when the user has no basket; it never creates one.
	FindBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// GetOrCreateBasket returns the user's basket, creating an empty one in
	// the same statement when absent. The partial unique index on
	// (user_id) WHERE status='basket' keeps this race-safe: a concurrent
	// creator loses and the existing row is returned.
	GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// CreateItem adds a line item. Returns ErrDuplicateOrderItem when the
	// order already references the same listing.
	CreateItem(ctx context.Context, item *entity.OrderItem) error

	// UpdateItemQuantity sets the quantity of one item scoped to the given
	// order. Returns the number of rows actually updated (0 or 1).
	UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, quantity int) (int64, error)

	// DeleteItems removes the given items scoped to the given order and
	// returns the number of rows deleted.
	DeleteItems(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) (int64, error)

	// TransitionToPlaced atomically moves the order from basket to new,
	// attaching the contact, via a single conditional update on
	// (id, user_id, status='basket'). Returns the number of rows matched;
	// of two concurrent calls at most one observes 1.
	TransitionToPlaced(ctx context.Context, orderID, userID, contactID uuid.UUID) (int64, error)

	// FindByID retrieves one order (any status) belonging to the user.
	FindByID(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error)

	// FindPlacedByUser lists the user's non-basket orders, newest first,
	// fully resolved for total computation.
	FindPlacedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// FindPlacedByShop lists non-basket orders containing at least one line
	// item whose listing belongs to the shop. Each returned order carries
	// only that shop's line items, so totals computed over it are
	// shop-scoped. Pass uuid.Nil as orderID for no id filter.
	FindPlacedByShop(ctx context.Context, shopID, orderID uuid.UUID) ([]*entity.Order, error)
}
