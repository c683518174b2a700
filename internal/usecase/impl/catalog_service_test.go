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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	shopRepo    *mockRepo.MockShopRepository
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	catalogRepo := mockRepo.NewMockCatalogRepository(t)

	svc := NewCatalogService(CatalogServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		ShopRepo:    shopRepo,
		CatalogRepo: catalogRepo,
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     svc,
		txManager:   txManager,
		userRepo:    userRepo,
		shopRepo:    shopRepo,
		catalogRepo: catalogRepo,
	}
}

const sampleFeed = `shop: Svyaznoy
categories:
  - id: 224
    name: Smartphones
  - id: 15
    name: Accessories
goods:
  - id: 4216292
    category: 224
    model: apple/iphone/xs-max
    name: Smartphone Apple iPhone XS Max 512GB (golden)
    price: 110000
    price_rrc: 116990
    quantity: 14
    parameters:
      "Screen Size (inches)": 6.5
      "Color": golden
`

// expectActiveCaller stubs the caller lookup that gates feed ingestion.
func expectActiveCaller(fx catalogServiceFixtures, ctx context.Context, ownerID uuid.UUID) {
	fx.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Role: entity.RoleShop, Active: true}, nil)
}

func TestCatalogService_IngestFeed_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	shopID := uuid.New()
	listingID := uuid.New()

	expectActiveCaller(fx, ctx, ownerID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockCatalogRepo := mockRepo.NewMockCatalogRepository(t)

			mockFactory.EXPECT().ShopRepo().Return(mockShopRepo)
			mockFactory.EXPECT().CatalogRepo().Return(mockCatalogRepo)

			mockShopRepo.EXPECT().
				Upsert(ctx, mock.AnythingOfType("*entity.Shop")).
				Run(func(ctx context.Context, shop *entity.Shop) {
					assert.Equal(t, "Svyaznoy", shop.Name)
					assert.Equal(t, ownerID, shop.OwnerID)
					assert.True(t, shop.AcceptingOrders)
					shop.ID = shopID
				}).
				Return(nil)

			mockCatalogRepo.EXPECT().
				UpsertCategory(ctx, mock.AnythingOfType("*entity.Category")).
				Return(nil).
				Times(2)
			mockCatalogRepo.EXPECT().
				LinkShopCategory(ctx, shopID, mock.AnythingOfType("int64")).
				Return(nil).
				Times(2)

			mockCatalogRepo.EXPECT().
				UpsertProduct(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					assert.Equal(t, int64(4216292), product.ID)
					assert.Equal(t, int64(224), product.CategoryID)
				}).
				Return(nil)

			mockCatalogRepo.EXPECT().
				UpsertListing(ctx, mock.AnythingOfType("*entity.Listing")).
				Run(func(ctx context.Context, listing *entity.Listing) {
					assert.Equal(t, int64(4216292), listing.ExternalID)
					assert.Equal(t, shopID, listing.ShopID)
					assert.Equal(t, 14, listing.Quantity)
					assert.Equal(t, "110000", listing.Price.String())
					listing.ID = listingID
				}).
				Return(nil)

			mockCatalogRepo.EXPECT().
				UpsertParameter(ctx, mock.AnythingOfType("*entity.Parameter")).
				Return(nil).
				Times(2)
			mockCatalogRepo.EXPECT().
				SetListingParameter(ctx, listingID, mock.AnythingOfType("int64"), mock.AnythingOfType("string")).
				Return(nil).
				Times(2)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	output, err := fx.service.IngestFeed(ctx, usecase.IngestFeedInput{
		OwnerID: ownerID,
		Body:    []byte(sampleFeed),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, output.Categories)
	assert.Equal(t, 1, output.Listings)
	assert.Equal(t, shopID, output.Shop.ID)
}

func TestCatalogService_IngestFeed_MalformedDocument(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	expectActiveCaller(fx, ctx, ownerID)

	output, err := fx.service.IngestFeed(ctx, usecase.IngestFeedInput{
		OwnerID: ownerID,
		Body:    []byte("shop: [unterminated"),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrFeedMalformed))
}

func TestCatalogService_IngestFeed_InactiveCaller(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(&entity.User{ID: ownerID, Role: entity.RoleShop, Active: false}, nil)

	output, err := fx.service.IngestFeed(ctx, usecase.IngestFeedInput{
		OwnerID: ownerID,
		Body:    []byte(sampleFeed),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountInactive))
}

func TestCatalogService_IngestFeed_UnknownCaller(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.userRepo.EXPECT().
		FindByID(ctx, ownerID).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.IngestFeed(ctx, usecase.IngestFeedInput{
		OwnerID: ownerID,
		Body:    []byte(sampleFeed),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestCatalogService_IngestFeed_RollsBackOnFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	dbErr := errors.New("connection reset")

	expectActiveCaller(fx, ctx, ownerID)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(dbErr)

	output, err := fx.service.IngestFeed(ctx, usecase.IngestFeedInput{
		OwnerID: ownerID,
		Body:    []byte(sampleFeed),
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, dbErr))
}

func TestCatalogService_GetPartnerState_NoShop(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrShopNotFound)

	shop, err := fx.service.GetPartnerState(ctx, ownerID)

	assert.Nil(t, shop)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestCatalogService_SetPartnerState_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: ownerID, Name: "Svyaznoy", AcceptingOrders: false}

	fx.shopRepo.EXPECT().SetAcceptingOrders(ctx, ownerID, false).Return(nil)
	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(shop, nil)

	result, err := fx.service.SetPartnerState(ctx, ownerID, false)

	require.NoError(t, err)
	assert.False(t, result.AcceptingOrders)
}

func TestCatalogService_SearchListings_PassesFilter(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	shopID := uuid.New()
	listings := []*entity.Listing{{ID: uuid.New(), ShopID: shopID}}

	fx.catalogRepo.EXPECT().
		SearchListings(ctx, repository.ListingFilter{ShopID: shopID, CategoryID: 224}).
		Return(listings, nil)

	result, err := fx.service.SearchListings(ctx, usecase.SearchListingsInput{ShopID: shopID, CategoryID: 224})

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
