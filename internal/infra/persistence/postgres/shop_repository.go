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
	"gorm.io/gorm/clause"
)

// shopRepository implements the repository.ShopRepository interface.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{
		db: db,
	}
}

// FindByOwner retrieves the shop administered by the given user.
func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		First(&shopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by owner")
	}

	return toShopDomain(&shopM), nil
}

// FindAll lists every shop ordered by name.
func (repo *shopRepository) FindAll(ctx context.Context) ([]*entity.Shop, error) {
	var shopModels []*model.ShopModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

// Upsert creates the owner's shop or refreshes its name and URL in place.
// The unique constraint on user_id is the conflict target, so one shop per
// owner holds even under concurrent feed uploads.
func (repo *shopRepository) Upsert(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "url", "updated_at"}),
		}).
		Create(shopM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert shop")
	}

	// An upsert that hit the conflict branch keeps the existing row's id,
	// so read it back by the natural key.
	var stored model.ShopModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", shop.OwnerID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload shop after upsert")
	}

	shop.ID = stored.ID
	shop.AcceptingOrders = stored.AcceptingOrders
	shop.CreatedAt = stored.CreatedAt
	shop.UpdatedAt = stored.UpdatedAt

	return nil
}

// SetAcceptingOrders flips the accepting-orders flag on the owner's shop.
func (repo *shopRepository) SetAcceptingOrders(ctx context.Context, ownerID uuid.UUID, accepting bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("user_id = ?", ownerID).
		Update("accepting_orders", accepting)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:              data.ID,
		Name:            data.Name,
		URL:             data.URL,
		AcceptingOrders: data.AcceptingOrders,
		OwnerID:         data.UserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:              data.ID,
		Name:            data.Name,
		URL:             data.URL,
		AcceptingOrders: data.AcceptingOrders,
		UserID:          data.OwnerID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
