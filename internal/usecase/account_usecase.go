// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FirstName string `validate:"required,max=100"`
	LastName  string `validate:"required,max=100"`
	Email     string `validate:"required,email,max=200"`
	Password  string `validate:"required"`
	Company   string `validate:"max=90"`
	Position  string `validate:"max=40"`
	Role      string `validate:"omitempty,oneof=buyer shop"`
}

// ConfirmEmailInput defines the email/token pair redeemed after registration.
type ConfirmEmailInput struct {
	Email string `validate:"required,email"`
	Token string `validate:"required"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// UpdateDetailsInput carries the mutable account fields. Nil pointers mean
// "leave unchanged".
type UpdateDetailsInput struct {
	FirstName *string `validate:"omitempty,max=100"`
	LastName  *string `validate:"omitempty,max=100"`
	Email     *string `validate:"omitempty,email,max=200"`
	Password  *string
	Company   *string `validate:"omitempty,max=90"`
	Position  *string `validate:"omitempty,max=40"`
	// AvatarURL schedules an async download; the stored path appears on the
	// account once the worker has fetched the image.
	AvatarURL *string `validate:"omitempty,url"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	ConfirmEmail(ctx context.Context, input ConfirmEmailInput) error
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetDetails(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateDetails(ctx context.Context, userID uuid.UUID, input UpdateDetailsInput) (*entity.User, error)
}
