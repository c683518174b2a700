package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
}

// ContactServiceParams holds dependencies for contactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
	Logger      *slog.Logger
}

// NewContactService is the constructor for contactService.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListContacts lists the caller's delivery contacts.
func (srv *contactService) ListContacts(ctx context.Context, userID uuid.UUID) ([]*entity.Contact, error) {
	return srv.contactRepo.FindByUser(ctx, userID)
}

// CreateContact persists a new delivery contact for the caller.
func (srv *contactService) CreateContact(ctx context.Context, userID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		UserID:    userID,
		City:      input.City,
		Street:    input.Street,
		House:     input.House,
		Structure: input.Structure,
		Building:  input.Building,
		Apartment: input.Apartment,
		Phone:     input.Phone,
	}

	if err := srv.contactRepo.Create(ctx, contact); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Contact created", slog.Any("contactID", contact.ID), slog.Any("userID", userID))

	return contact, nil
}

// UpdateContact modifies one of the caller's contacts. A foreign contact id
// behaves exactly like a missing one.
func (srv *contactService) UpdateContact(ctx context.Context, userID, contactID uuid.UUID, input usecase.ContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		ID:        contactID,
		UserID:    userID,
		City:      input.City,
		Street:    input.Street,
		House:     input.House,
		Structure: input.Structure,
		Building:  input.Building,
		Apartment: input.Apartment,
		Phone:     input.Phone,
	}

	if err := srv.contactRepo.Update(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, err
	}

	return srv.contactRepo.FindByID(ctx, contactID, userID)
}

// DeleteContact removes one of the caller's contacts.
func (srv *contactService) DeleteContact(ctx context.Context, userID, contactID uuid.UUID) error {
	if err := srv.contactRepo.Delete(ctx, contactID, userID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return domainerrors.ErrContactNotFound
		}

		return err
	}

	return nil
}
