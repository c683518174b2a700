// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order. A row with StatusBasket is
// the user's current cart; it only becomes a real order once checkout moves
// it to StatusNew.
type OrderStatus string

const (
	StatusBasket    OrderStatus = "basket"
	StatusNew       OrderStatus = "new"
	StatusConfirmed OrderStatus = "confirmed"
	StatusAssembled OrderStatus = "assembled"
	StatusSent      OrderStatus = "sent"
	StatusDelivered OrderStatus = "delivered"
	StatusCanceled  OrderStatus = "canceled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusBasket, StatusNew, StatusConfirmed, StatusAssembled,
		StatusSent, StatusDelivered, StatusCanceled:
		return true
	default:
		return false
	}
}

// Order is either a basket (mutable, at most one per user) or a placed order
// (immutable line items, status advances through fulfilment).
type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Status    OrderStatus
	ContactID *uuid.UUID // Delivery contact, set at checkout. Nil for baskets.
	Contact   *Contact
	Items     []OrderItem
	CreatedAt time.Time
}

// OrderItem is one line of an order: a listing and a positive quantity.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ListingID uuid.UUID
	Quantity  int
	Listing   *Listing // Resolved on reads so callers see price/product/parameters.
}

// Total sums quantity × listing price over the order's items. Items whose
// listing is not resolved contribute nothing. An empty order totals zero.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		if item.Listing == nil {
			continue
		}
		total = total.Add(item.Listing.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total
}
