package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. A partial unique index on
// (user_id) WHERE status = 'basket' (migrations/0001_init.sql) enforces the
// one-basket-per-user invariant at the storage level.
type OrderModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status    string     `gorm:"type:varchar(10);not null;index"`
	ContactID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time

	Contact *ContactModel    `gorm:"foreignKey:ContactID"`
	Items   []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. The unique (order, listing)
// pair turns a duplicate add-to-basket into a constraint violation instead of
// a second line item; deleting a listing cascades here.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_listing"`
	ListingID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_items_order_listing"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`

	Listing *ListingModel `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
