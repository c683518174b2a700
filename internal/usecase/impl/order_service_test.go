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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	orderRepo   *mockRepo.MockOrderRepository
	shopRepo    *mockRepo.MockShopRepository
	contactRepo *mockRepo.MockContactRepository
	publisher   *mockSvc.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewOrderService(OrderServiceParams{
		TxManager:   txManager,
		OrderRepo:   orderRepo,
		ShopRepo:    shopRepo,
		ContactRepo: contactRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	return orderServiceFixtures{
		service:     svc,
		txManager:   txManager,
		orderRepo:   orderRepo,
		shopRepo:    shopRepo,
		contactRepo: contactRepo,
		publisher:   publisher,
	}
}

// basketWith builds a basket whose items resolve to listings with the given
// unit prices, one item of quantity 2 per price.
func basketWith(userID uuid.UUID, prices ...int64) *entity.Order {
	basket := &entity.Order{
		ID:     uuid.New(),
		UserID: userID,
		Status: entity.StatusBasket,
	}
	for _, price := range prices {
		basket.Items = append(basket.Items, entity.OrderItem{
			ID:       uuid.New(),
			OrderID:  basket.ID,
			Quantity: 2,
			Listing:  &entity.Listing{ID: uuid.New(), Price: decimal.NewFromInt(price)},
		})
	}

	return basket
}

func TestOrderService_GetBasket_EmptyWithoutCreating(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().FindBasket(ctx, userID).Return(nil, repository.ErrBasketNotFound)

	output, err := fx.service.GetBasket(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, output.Order.Items)
	assert.True(t, output.Total.IsZero())
}

func TestOrderService_GetBasket_ComputesTotal(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	basket := basketWith(userID, 110000, 500)

	fx.orderRepo.EXPECT().FindBasket(ctx, userID).Return(basket, nil)

	output, err := fx.service.GetBasket(ctx, userID)

	require.NoError(t, err)
	// 2*110000 + 2*500
	assert.Equal(t, "221000", output.Total.String())
}

func TestOrderService_AddItems_EmptyBatch(t *testing.T) {
	fx := createTestOrderService(t)

	output, err := fx.service.AddItems(context.Background(), uuid.New(), nil)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_AddItems_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	output, err := fx.service.AddItems(context.Background(), uuid.New(), []usecase.AddItemInput{
		{ListingID: uuid.New(), Quantity: 0},
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestOrderService_AddItems_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	listingID := uuid.New()
	basket := basketWith(userID, 500)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().
				GetOrCreateBasket(ctx, userID).
				Return(basket, nil)

			mockOrderRepo.EXPECT().
				CreateItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Run(func(ctx context.Context, item *entity.OrderItem) {
					assert.Equal(t, basket.ID, item.OrderID)
					assert.Equal(t, listingID, item.ListingID)
					assert.Equal(t, 3, item.Quantity)
				}).
				Return(nil)

			require.NoError(t, fn(mockFactory))
		}).
		Return(nil)

	fx.orderRepo.EXPECT().FindBasket(ctx, userID).Return(basket, nil)

	output, err := fx.service.AddItems(ctx, userID, []usecase.AddItemInput{
		{ListingID: listingID, Quantity: 3},
	})

	require.NoError(t, err)
	assert.Equal(t, basket.ID, output.Order.ID)
}

func TestOrderService_AddItems_DuplicateListing(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	basket := basketWith(userID)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)

			mockOrderRepo.EXPECT().GetOrCreateBasket(ctx, userID).Return(basket, nil)
			mockOrderRepo.EXPECT().
				CreateItem(ctx, mock.AnythingOfType("*entity.OrderItem")).
				Return(repository.ErrDuplicateOrderItem)

			assert.True(t, errors.Is(fn(mockFactory), domainerrors.ErrBasketItemExists))
		}).
		Return(domainerrors.ErrBasketItemExists)

	output, err := fx.service.AddItems(ctx, userID, []usecase.AddItemInput{
		{ListingID: uuid.New(), Quantity: 1},
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrBasketItemExists))
}

func TestOrderService_UpdateItems_SkipsMalformedEntries(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	basket := basketWith(userID, 500)
	validID := uuid.New()

	fx.orderRepo.EXPECT().FindBasket(ctx, userID).Return(basket, nil)
	fx.orderRepo.EXPECT().
		UpdateItemQuantity(ctx, basket.ID, validID, 5).
		Return(int64(1), nil)

	output, err := fx.service.UpdateItems(ctx, userID, []usecase.UpdateItemInput{
		{ItemID: "not-a-uuid", Quantity: 2},
		{ItemID: validID.String(), Quantity: 5},
		{ItemID: uuid.New().String(), Quantity: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Count)
}

func TestOrderService_UpdateItems_NoBasket(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().FindBasket(ctx, userID).Return(nil, repository.ErrBasketNotFound)

	output, err := fx.service.UpdateItems(ctx, userID, []usecase.UpdateItemInput{
		{ItemID: uuid.New().String(), Quantity: 3},
	})

	require.NoError(t, err)
	assert.Zero(t, output.Count)
}

func TestOrderService_RemoveItems_IgnoresMalformedIDs(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	basket := basketWith(userID, 500)
	validID := uuid.New()

	fx.orderRepo.EXPECT().FindBasket(ctx, userID).Return(basket, nil)
	fx.orderRepo.EXPECT().
		DeleteItems(ctx, basket.ID, []uuid.UUID{validID}).
		Return(int64(1), nil)

	output, err := fx.service.RemoveItems(ctx, userID, []string{"garbage", validID.String()})

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Count)
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()
	placed := basketWith(userID, 110000)
	placed.Status = entity.StatusNew

	fx.contactRepo.EXPECT().
		FindByID(ctx, contactID, userID).
		Return(&entity.Contact{ID: contactID, UserID: userID}, nil)
	fx.orderRepo.EXPECT().
		TransitionToPlaced(ctx, placed.ID, userID, contactID).
		Return(int64(1), nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, placed.ID, userID).
		Return(placed, nil)

	fx.publisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventOrderPlaced, event.Type)
			assert.Equal(t, placed.ID.String(), event.OrderID)
			assert.Equal(t, "220000.00", event.Total)
		}).
		Return(nil)

	output, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		OrderID:   placed.ID,
		ContactID: contactID,
	})

	require.NoError(t, err)
	assert.Equal(t, "220000", output.Total.String())
}

func TestOrderService_PlaceOrder_ForeignContact(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()

	fx.contactRepo.EXPECT().
		FindByID(ctx, contactID, userID).
		Return(nil, repository.ErrContactNotFound)

	output, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		OrderID:   uuid.New(),
		ContactID: contactID,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrContactNotFound))
}

func TestOrderService_PlaceOrder_AlreadyPlaced(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()
	orderID := uuid.New()

	fx.contactRepo.EXPECT().
		FindByID(ctx, contactID, userID).
		Return(&entity.Contact{ID: contactID, UserID: userID}, nil)
	fx.orderRepo.EXPECT().
		TransitionToPlaced(ctx, orderID, userID, contactID).
		Return(int64(0), nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID, userID).
		Return(&entity.Order{ID: orderID, UserID: userID, Status: entity.StatusNew}, nil)

	output, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		OrderID:   orderID,
		ContactID: contactID,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderStateConflict))
}

func TestOrderService_PlaceOrder_UnknownOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uuid.New()
	contactID := uuid.New()
	orderID := uuid.New()

	fx.contactRepo.EXPECT().
		FindByID(ctx, contactID, userID).
		Return(&entity.Contact{ID: contactID, UserID: userID}, nil)
	fx.orderRepo.EXPECT().
		TransitionToPlaced(ctx, orderID, userID, contactID).
		Return(int64(0), nil)
	fx.orderRepo.EXPECT().
		FindByID(ctx, orderID, userID).
		Return(nil, repository.ErrOrderNotFound)

	output, err := fx.service.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		OrderID:   orderID,
		ContactID: contactID,
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestOrderService_ListPartnerOrders_ShopScopedTotals(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	shop := &entity.Shop{ID: uuid.New(), OwnerID: ownerID}

	// The repository returns orders already stripped to the shop's lines.
	order := basketWith(uuid.New(), 500)
	order.Status = entity.StatusNew

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(shop, nil)
	fx.orderRepo.EXPECT().
		FindPlacedByShop(ctx, shop.ID, uuid.Nil).
		Return([]*entity.Order{order}, nil)

	outputs, err := fx.service.ListPartnerOrders(ctx, ownerID, uuid.Nil)

	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "1000", outputs[0].Total.String())
}

func TestOrderService_ListPartnerOrders_NoShop(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, repository.ErrShopNotFound)

	outputs, err := fx.service.ListPartnerOrders(ctx, ownerID, uuid.Nil)

	assert.Nil(t, outputs)
	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}
