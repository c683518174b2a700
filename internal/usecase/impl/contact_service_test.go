package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestContactService(t *testing.T) (usecase.ContactUsecase, *mockRepo.MockContactRepository) {
	contactRepo := mockRepo.NewMockContactRepository(t)

	svc := NewContactService(ContactServiceParams{
		ContactRepo: contactRepo,
		Logger:      newDiscardLogger(),
	})

	return svc, contactRepo
}

func TestContactService_CreateContact_Success(t *testing.T) {
	svc, contactRepo := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := usecase.ContactInput{
		City:   "Moscow",
		Street: "Tverskaya",
		House:  "1",
		Phone:  "+7 900 000-00-00",
	}

	contactRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Contact")).
		Run(func(ctx context.Context, contact *entity.Contact) {
			assert.Equal(t, userID, contact.UserID)
			assert.Equal(t, input.City, contact.City)
			contact.ID = uuid.New()
		}).
		Return(nil)

	contact, err := svc.CreateContact(ctx, userID, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, contact.ID)
	assert.Equal(t, input.Phone, contact.Phone)
}

func TestContactService_UpdateContact_NotFound(t *testing.T) {
	svc, contactRepo := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()

	contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Return(repository.ErrContactNotFound)

	contact, err := svc.UpdateContact(ctx, userID, contactID, usecase.ContactInput{City: "Moscow"})

	assert.Nil(t, contact)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_UpdateContact_ReloadsAfterWrite(t *testing.T) {
	svc, contactRepo := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()
	stored := &entity.Contact{ID: contactID, UserID: userID, City: "Moscow", Phone: "+7 900 000-00-00"}

	contactRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Contact")).
		Return(nil)
	contactRepo.EXPECT().
		FindByID(ctx, contactID, userID).
		Return(stored, nil)

	contact, err := svc.UpdateContact(ctx, userID, contactID, usecase.ContactInput{City: "Moscow"})

	require.NoError(t, err)
	assert.Equal(t, stored, contact)
}

func TestContactService_DeleteContact_ForeignContact(t *testing.T) {
	svc, contactRepo := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()

	contactRepo.EXPECT().
		Delete(ctx, contactID, userID).
		Return(repository.ErrContactNotFound)

	err := svc.DeleteContact(ctx, userID, contactID)

	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestContactService_ListContacts(t *testing.T) {
	svc, contactRepo := createTestContactService(t)

	ctx := context.Background()
	userID := uuid.New()
	contacts := []*entity.Contact{{ID: uuid.New(), UserID: userID}}

	contactRepo.EXPECT().FindByUser(ctx, userID).Return(contacts, nil)

	result, err := svc.ListContacts(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
