// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an inactive account and a pending confirmation token,
// then emits a registration event so the worker mails the token out.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	role := entity.RoleBuyer
	if input.Role != "" {
		role = entity.Role(input.Role)
		if !role.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("type: must be buyer or shop")
		}
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	token, err := newConfirmationToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate confirmation token")
	}

	user := &entity.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Company:      input.Company,
		Position:     input.Position,
		Role:         role,
		PasswordHash: hashedPassword,
		Active:       false,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		confirmation := &entity.EmailConfirmation{
			UserID: user.ID,
			Key:    token,
		}

		return userRepo.CreateConfirmation(ctx, confirmation)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, &service.Event{
		Type:      service.EventUserRegistered,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    user.ID.String(),
		Email:     user.Email,
		Name:      user.FullName(),
		Token:     token,
	})

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user}, nil
}

// ConfirmEmail redeems a confirmation token and activates the account.
// An unknown email/token pair yields one generic error so the endpoint cannot
// be used to probe registered addresses.
func (srv *accountService) ConfirmEmail(ctx context.Context, input usecase.ConfirmEmailInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		confirmation, err := userRepo.FindConfirmation(ctx, input.Email, input.Token)
		if errors.Is(err, repository.ErrConfirmationNotFound) {
			return domainerrors.ErrConfirmationInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find confirmation")
		}

		user, err := userRepo.FindByID(ctx, confirmation.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for confirmation")
		}

		user.Active = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to activate user")
		}

		return userRepo.DeleteConfirmation(ctx, confirmation.ID)
	})
}

// Login checks credentials and issues an access token. Unknown email, wrong
// password and inactive account all produce the same generic error.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !user.Active || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// GetDetails returns the current account snapshot.
func (srv *accountService) GetDetails(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateDetails applies the supplied fields to the account. A new avatar URL
// is not downloaded inline; an event schedules the fetch on the worker.
func (srv *accountService) UpdateDetails(ctx context.Context, userID uuid.UUID, input usecase.UpdateDetailsInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Company != nil {
		user.Company = *input.Company
	}
	if input.Position != nil {
		user.Position = *input.Position
	}
	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, err
		}
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hashed
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if input.AvatarURL != nil && *input.AvatarURL != "" {
		srv.publishEvent(ctx, &service.Event{
			Type:      service.EventAvatarFetch,
			RequestID: deliverycontext.GetRequestIDFromContext(ctx),
			UserID:    user.ID.String(),
			AvatarURL: *input.AvatarURL,
		})
	}

	return user, nil
}

// publishEvent enqueues an event without letting a queue failure surface to
// the caller. The mutation already committed; delivery is best effort.
func (srv *accountService) publishEvent(ctx context.Context, event *service.Event) {
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

// newConfirmationToken returns a 64-character hex token.
func newConfirmationToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
