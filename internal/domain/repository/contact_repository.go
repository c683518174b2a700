// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when a contact is not found. Lookups are
// always scoped to an owner, so a foreign contact id yields this same error.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository defines the operations for delivery-contact persistence.
type ContactRepository interface {
	// FindByUser lists all contacts belonging to the user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)

	// FindByID retrieves a contact by id, scoped to the owning user.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Contact, error)

	// Create persists a new contact.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update modifies an existing contact, scoped to the owning user.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact by id, scoped to the owning user.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
