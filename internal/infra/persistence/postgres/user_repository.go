// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("user data violates database constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"email":         userM.Email,
			"first_name":    userM.FirstName,
			"last_name":     userM.LastName,
			"company":       userM.Company,
			"position":      userM.Position,
			"role":          userM.Role,
			"password_hash": userM.PasswordHash,
			"active":        userM.Active,
			"avatar_path":   userM.AvatarPath,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// CreateConfirmation stores a pending email confirmation token.
func (repo *userRepository) CreateConfirmation(ctx context.Context, confirmation *entity.EmailConfirmation) error {
	confirmationM := fromConfirmationDomain(confirmation)

	if err := repo.db.WithContext(ctx).Create(confirmationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create email confirmation")
	}

	confirmation.ID = confirmationM.ID
	confirmation.CreatedAt = confirmationM.CreatedAt

	return nil
}

// FindConfirmation looks up a pending confirmation by owner email and token key.
func (repo *userRepository) FindConfirmation(ctx context.Context, email, key string) (*entity.EmailConfirmation, error) {
	var confirmationM model.EmailConfirmationModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN users ON users.id = email_confirmations.user_id").
		Where("users.email = ? AND email_confirmations.key = ?", email, key).
		First(&confirmationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfirmationNotFound
		}

		return nil, errors.Wrap(err, "failed to find email confirmation")
	}

	return toConfirmationDomain(&confirmationM), nil
}

// DeleteConfirmation removes a redeemed confirmation token.
func (repo *userRepository) DeleteConfirmation(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EmailConfirmationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete email confirmation")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Company:      data.Company,
		Position:     data.Position,
		Role:         entity.Role(data.Role),
		PasswordHash: data.PasswordHash,
		Active:       data.Active,
		AvatarPath:   data.AvatarPath,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Company:      data.Company,
		Position:     data.Position,
		Role:         data.Role.String(),
		PasswordHash: data.PasswordHash,
		Active:       data.Active,
		AvatarPath:   data.AvatarPath,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toConfirmationDomain converts a GORM EmailConfirmationModel to a domain entity.
func toConfirmationDomain(data *model.EmailConfirmationModel) *entity.EmailConfirmation {
	if data == nil {
		return nil
	}

	return &entity.EmailConfirmation{
		ID:        data.ID,
		UserID:    data.UserID,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
	}
}

// fromConfirmationDomain converts a domain EmailConfirmation entity to its GORM model.
func fromConfirmationDomain(data *entity.EmailConfirmation) *model.EmailConfirmationModel {
	if data == nil {
		return nil
	}

	return &model.EmailConfirmationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
	}
}
