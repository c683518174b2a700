package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ContactInput carries the delivery address fields for create and update.
type ContactInput struct {
	City      string `validate:"required,max=50"`
	Street    string `validate:"required,max=100"`
	House     string `validate:"max=15"`
	Structure string `validate:"max=15"`
	Building  string `validate:"max=15"`
	Apartment string `validate:"max=15"`
	Phone     string `validate:"required,max=20"`
}

// ContactUsecase defines the delivery-contact operations. Everything is
// scoped to the calling user; foreign ids behave as not found.
type ContactUsecase interface {
	ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error)
	CreateContact(ctx context.Context, userID uuid.UUID, input ContactInput) (*entity.Contact, error)
	UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input ContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error
}
