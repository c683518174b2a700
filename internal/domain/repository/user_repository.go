// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrConfirmationNotFound is returned when no pending email confirmation
	// matches the given email/key pair.
	ErrConfirmationNotFound = errors.New("email confirmation not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// CreateConfirmation stores a pending email confirmation token.
	CreateConfirmation(ctx context.Context, confirmation *entity.EmailConfirmation) error

	// FindConfirmation looks up a pending confirmation by the owner's email
	// and the token key. Returns ErrConfirmationNotFound when no such pair
	// exists.
	FindConfirmation(ctx context.Context, email, key string) (*entity.EmailConfirmation, error)

	// DeleteConfirmation removes a redeemed confirmation token.
	DeleteConfirmation(ctx context.Context, id uuid.UUID) error
}
