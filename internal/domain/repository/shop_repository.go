// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrShopNotFound is returned when a shop is not found.
var ErrShopNotFound = errors.New("shop not found")

// ShopRepository defines the operations for shop persistence.
type ShopRepository interface {
	// FindByOwner retrieves the shop administered by the given user.
	// Returns ErrShopNotFound if the user has never uploaded a catalog.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)

	// FindAll lists every shop, newest name first.
	FindAll(ctx context.Context) ([]*entity.Shop, error)

	// Upsert creates the owner's shop or updates its name/url in place.
	// One shop per owner is an invariant enforced by a unique constraint.
	Upsert(ctx context.Context, shop *entity.Shop) error

	// SetAcceptingOrders flips the accepting-orders flag on the owner's shop.
	// Returns ErrShopNotFound when the owner has no shop yet.
	SetAcceptingOrders(ctx context.Context, ownerID uuid.UUID, accepting bool) error
}
