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

// catalogRepository implements the repository.CatalogRepository interface.
// All Upsert* methods key on natural identifiers from partner feeds, so
// ingestion can run any number of times without duplicating rows.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// UpsertCategory creates or renames a category by its feed-assigned id.
func (repo *catalogRepository) UpsertCategory(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		ID:   category.ID,
		Name: category.Name,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert category")
	}

	return nil
}

// LinkShopCategory records that the shop offers the category. Linking an
// already linked pair is a no-op.
func (repo *catalogRepository) LinkShopCategory(ctx context.Context, shopID uuid.UUID, categoryID int64) error {
	link := &model.ShopCategoryModel{
		ShopID:     shopID,
		CategoryID: categoryID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrShopNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link shop category")
	}

	return nil
}

// UpsertProduct creates or updates a product by its feed-assigned id.
func (repo *catalogRepository) UpsertProduct(ctx context.Context, product *entity.Product) error {
	productM := &model.ProductModel{
		ID:         product.ID,
		Name:       product.Name,
		CategoryID: product.CategoryID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "category_id"}),
		}).
		Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFeedMalformed.WrapMessage("product references unknown category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert product")
	}

	return nil
}

// UpsertListing creates or overwrites the listing identified by
// (shop_id, external_id), refreshing the mutable fields. The stored row's id
// is written back into the entity.
func (repo *catalogRepository) UpsertListing(ctx context.Context, listing *entity.Listing) error {
	listingM := &model.ListingModel{
		ExternalID:  listing.ExternalID,
		ProductID:   listing.ProductID,
		ShopID:      listing.ShopID,
		Model:       listing.Model,
		Description: listing.Description,
		Quantity:    listing.Quantity,
		Price:       listing.Price,
		PriceRRC:    listing.PriceRRC,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "external_id"}, {Name: "shop_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"product_id", "model", "description", "quantity", "price", "price_rrc",
			}),
		}).
		Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFeedMalformed.WrapMessage("listing references unknown product or shop")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert listing")
	}

	// The conflict branch keeps the existing row's id, so resolve it by the
	// natural key for the parameter writes that follow.
	var stored model.ListingModel
	if err := repo.db.WithContext(ctx).
		Select("id").
		Where("shop_id = ? AND external_id = ?", listing.ShopID, listing.ExternalID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload listing after upsert")
	}

	listing.ID = stored.ID

	return nil
}

// UpsertParameter resolves a parameter name to its dictionary id, creating
// the entry when the name is new.
func (repo *catalogRepository) UpsertParameter(ctx context.Context, parameter *entity.Parameter) error {
	parameterM := &model.ParameterModel{
		Name: parameter.Name,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(parameterM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert parameter")
	}

	// DO NOTHING does not return the existing id, so look it up by name.
	var stored model.ParameterModel
	if err := repo.db.WithContext(ctx).
		Where("name = ?", parameter.Name).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload parameter after upsert")
	}

	parameter.ID = stored.ID

	return nil
}

// SetListingParameter creates or replaces the value of one parameter on one
// listing.
func (repo *catalogRepository) SetListingParameter(ctx context.Context, listingID uuid.UUID, parameterID int64, value string) error {
	listingParameterM := &model.ListingParameterModel{
		ListingID:   listingID,
		ParameterID: parameterID,
		Value:       value,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "listing_id"}, {Name: "parameter_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(listingParameterM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListingNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to set listing parameter")
	}

	return nil
}

// FindCategories lists all categories ordered by name.
func (repo *catalogRepository) FindCategories(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// FindProducts lists all products with their categories resolved.
func (repo *catalogRepository) FindProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Order("name ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// SearchListings returns listings matching the filter with product, category,
// shop and parameters resolved. Listings of shops that switched order intake
// off are always excluded.
func (repo *catalogRepository) SearchListings(ctx context.Context, filter repository.ListingFilter) ([]*entity.Listing, error) {
	var listingModels []*model.ListingModel

	query := repo.db.WithContext(ctx).
		Preload("Product.Category").
		Preload("Shop").
		Preload("Parameters.Parameter").
		Joins("JOIN shops ON shops.id = listings.shop_id").
		Where("shops.accepting_orders = ?", true)

	if filter.ShopID != uuid.Nil {
		query = query.Where("listings.shop_id = ?", filter.ShopID)
	}
	if filter.CategoryID != 0 {
		query = query.
			Joins("JOIN products ON products.id = listings.product_id").
			Where("products.category_id = ?", filter.CategoryID)
	}

	if err := query.Find(&listingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listings = append(listings, toListingDomain(listingM))
	}

	return listings, nil
}

// --- Mapper Functions ---

// toCategoryDomain converts a GORM CategoryModel to a domain Category entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:   data.ID,
		Name: data.Name,
	}
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		CategoryID: data.CategoryID,
		Category:   toCategoryDomain(data.Category),
	}
}

// toListingDomain converts a GORM ListingModel to a domain Listing entity,
// carrying resolved associations across.
func toListingDomain(data *model.ListingModel) *entity.Listing {
	if data == nil {
		return nil
	}

	parameters := make([]entity.ListingParameter, 0, len(data.Parameters))
	for _, parameterM := range data.Parameters {
		name := ""
		if parameterM.Parameter != nil {
			name = parameterM.Parameter.Name
		}
		parameters = append(parameters, entity.ListingParameter{
			ID:        parameterM.ID,
			ListingID: parameterM.ListingID,
			Name:      name,
			Value:     parameterM.Value,
		})
	}

	return &entity.Listing{
		ID:          data.ID,
		ExternalID:  data.ExternalID,
		ProductID:   data.ProductID,
		ShopID:      data.ShopID,
		Model:       data.Model,
		Description: data.Description,
		Quantity:    data.Quantity,
		Price:       data.Price,
		PriceRRC:    data.PriceRRC,
		Product:     toProductDomain(data.Product),
		Shop:        toShopDomain(data.Shop),
		Parameters:  parameters,
	}
}
