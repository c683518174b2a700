package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		publisher:    publisher,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		Password:  "Password123!",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	var issuedToken string

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				CreateConfirmation(ctx, mock.AnythingOfType("*entity.EmailConfirmation")).
				Run(func(ctx context.Context, confirmation *entity.EmailConfirmation) {
					issuedToken = confirmation.Key
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventUserRegistered, event.Type)
			assert.Equal(t, input.Email, event.Email)
			assert.Equal(t, issuedToken, event.Token)
		}).
		Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleBuyer, output.User.Role)
	assert.False(t, output.User.Active)
	assert.Len(t, issuedToken, 64)
}

func TestAccountService_Register_InvalidRole(t *testing.T) {
	fx := createTestAccountService(t)

	output, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "Password123!",
		Role:     "admin",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Register_WeakPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	weakErr := domainerrors.ErrValidationFailed.WithDetails("password: too short")
	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(weakErr)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "test@example.com",
		Password: "weak",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Register_PublishFailureDoesNotFail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{Email: "test@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(errors.New("queue unavailable"))

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestAccountService_ConfirmEmail_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	confirmationID := uuid.New()
	input := usecase.ConfirmEmailInput{
		Email: "test@example.com",
		Token: "sometoken",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindConfirmation(ctx, input.Email, input.Token).
				Return(&entity.EmailConfirmation{ID: confirmationID, UserID: userID, Key: input.Token}, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: input.Email, Active: false}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.True(t, user.Active)
				}).
				Return(nil)

			mockUserRepo.EXPECT().
				DeleteConfirmation(ctx, confirmationID).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	err := fx.service.ConfirmEmail(ctx, input)

	require.NoError(t, err)
}

func TestAccountService_ConfirmEmail_UnknownToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := usecase.ConfirmEmailInput{Email: "test@example.com", Token: "bogus"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindConfirmation(ctx, input.Email, input.Token).
				Return(nil, repository.ErrConfirmationNotFound)

			assert.True(t, errors.Is(fn(mockFactory), domainerrors.ErrConfirmationInvalid))
		}).
		Return(domainerrors.ErrConfirmationInvalid)

	err := fx.service.ConfirmEmail(ctx, input)

	assert.True(t, errors.Is(err, domainerrors.ErrConfirmationInvalid))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "test@example.com",
		Role:         entity.RoleBuyer,
		PasswordHash: "hashed",
		Active:       true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(userID, entity.RoleBuyer).Return("access-token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed", Active: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_InactiveAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed", Active: false}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_UpdateDetails_AvatarSchedulesFetch(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	avatarURL := "https://example.com/avatar.png"
	user := &entity.User{ID: userID, Email: "test@example.com", Active: true}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventAvatarFetch, event.Type)
			assert.Equal(t, userID.String(), event.UserID)
			assert.Equal(t, avatarURL, event.AvatarURL)
		}).
		Return(nil)

	updated, err := fx.service.UpdateDetails(ctx, userID, usecase.UpdateDetailsInput{AvatarURL: &avatarURL})

	require.NoError(t, err)
	assert.Equal(t, userID, updated.ID)
}

func TestAccountService_UpdateDetails_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	updated, err := fx.service.UpdateDetails(ctx, userID, usecase.UpdateDetailsInput{})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
