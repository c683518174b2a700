package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	orderRepo   repository.OrderRepository
	shopRepo    repository.ShopRepository
	contactRepo repository.ContactRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	OrderRepo   repository.OrderRepository
	ShopRepo    repository.ShopRepository
	ContactRepo repository.ContactRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:   params.TxManager,
		orderRepo:   params.OrderRepo,
		shopRepo:    params.ShopRepo,
		contactRepo: params.ContactRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetBasket returns the caller's basket snapshot. A user without a basket
// gets an empty one with a zero total; nothing is created.
func (srv *orderService) GetBasket(ctx context.Context, userID uuid.UUID) (*usecase.BasketOutput, error) {
	basket, err := srv.orderRepo.FindBasket(ctx, userID)
	if errors.Is(err, repository.ErrBasketNotFound) {
		empty := &entity.Order{
			UserID: userID,
			Status: entity.StatusBasket,
			Items:  []entity.OrderItem{},
		}

		return &usecase.BasketOutput{Order: empty, Total: decimal.Zero}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load basket")
	}

	return &usecase.BasketOutput{Order: basket, Total: basket.Total()}, nil
}

// AddItems adds a batch of line items to the caller's basket, creating the
// basket when absent. The batch is atomic: the first invalid or duplicate
// line rolls everything back.
func (srv *orderService) AddItems(ctx context.Context, userID uuid.UUID, items []usecase.AddItemInput) (*usecase.BasketOutput, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("items: must not be empty")
	}

	for _, item := range items {
		if item.ListingID == uuid.Nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("listing_id: required")
		}
		if item.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantity: must be at least 1")
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		basket, err := orderRepo.GetOrCreateBasket(ctx, userID)
		if err != nil {
			return err
		}

		for _, item := range items {
			err := orderRepo.CreateItem(ctx, &entity.OrderItem{
				OrderID:   basket.ID,
				ListingID: item.ListingID,
				Quantity:  item.Quantity,
			})
			if errors.Is(err, repository.ErrDuplicateOrderItem) {
				return domainerrors.ErrBasketItemExists
			}
			if errors.Is(err, repository.ErrListingNotFound) {
				return domainerrors.ErrListingNotFound
			}
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.GetBasket(ctx, userID)
}

// UpdateItems sets quantities on existing basket items. Entries with a
// malformed id or non-positive quantity are skipped rather than rejected.
func (srv *orderService) UpdateItems(ctx context.Context, userID uuid.UUID, items []usecase.UpdateItemInput) (*usecase.MutationOutput, error) {
	basket, err := srv.orderRepo.FindBasket(ctx, userID)
	if errors.Is(err, repository.ErrBasketNotFound) {
		return &usecase.MutationOutput{Count: 0}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load basket")
	}

	var updated int64
	for _, item := range items {
		itemID, err := uuid.Parse(item.ItemID)
		if err != nil || item.Quantity < 1 {
			continue
		}

		count, err := srv.orderRepo.UpdateItemQuantity(ctx, basket.ID, itemID, item.Quantity)
		if err != nil {
			return nil, err
		}
		updated += count
	}

	return &usecase.MutationOutput{Count: updated}, nil
}

// RemoveItems deletes basket items by raw id strings, ignoring malformed ids
// and ids outside the caller's basket.
func (srv *orderService) RemoveItems(ctx context.Context, userID uuid.UUID, itemIDs []string) (*usecase.MutationOutput, error) {
	basket, err := srv.orderRepo.FindBasket(ctx, userID)
	if errors.Is(err, repository.ErrBasketNotFound) {
		return &usecase.MutationOutput{Count: 0}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load basket")
	}

	ids := make([]uuid.UUID, 0, len(itemIDs))
	for _, raw := range itemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	deleted, err := srv.orderRepo.DeleteItems(ctx, basket.ID, ids)
	if err != nil {
		return nil, err
	}

	return &usecase.MutationOutput{Count: deleted}, nil
}

// PlaceOrder atomically turns the caller's basket into a placed order. The
// transition is a single conditional update, so two concurrent checkouts of
// the same basket cannot both succeed.
func (srv *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, input usecase.PlaceOrderInput) (*usecase.OrderOutput, error) {
	// The contact must belong to the caller before it is attached.
	if _, err := srv.contactRepo.FindByID(ctx, input.ContactID, userID); err != nil {
		if errors.Is(err, repository.ErrContactNotFound) {
			return nil, domainerrors.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to verify contact")
	}

	matched, err := srv.orderRepo.TransitionToPlaced(ctx, input.OrderID, userID, input.ContactID)
	if err != nil {
		return nil, err
	}

	if matched == 0 {
		// Distinguish "no such order for this caller" from "exists but is
		// not a basket anymore".
		if _, err := srv.orderRepo.FindByID(ctx, input.OrderID, userID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return nil, domainerrors.ErrOrderNotFound
			}

			return nil, errors.Wrap(err, "failed to inspect order")
		}

		return nil, domainerrors.ErrOrderStateConflict
	}

	order, err := srv.orderRepo.FindByID(ctx, input.OrderID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload placed order")
	}

	total := order.Total()

	srv.publishEvent(ctx, &service.Event{
		Type:      service.EventOrderPlaced,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    userID.String(),
		OrderID:   order.ID.String(),
		Total:     total.StringFixed(2),
	})

	srv.log(ctx).Info("Order placed",
		slog.Any("orderID", order.ID),
		slog.Any("userID", userID),
		slog.String("total", total.StringFixed(2)),
	)

	return &usecase.OrderOutput{Order: order, Total: total}, nil
}

// ListOrders returns the caller's placed orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*usecase.OrderOutput, error) {
	orders, err := srv.orderRepo.FindPlacedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return withTotals(orders), nil
}

// ListPartnerOrders returns placed orders containing the caller's shop's
// listings. Each order's items and total cover only that shop's lines.
func (srv *orderService) ListPartnerOrders(ctx context.Context, ownerID, orderID uuid.UUID) ([]*usecase.OrderOutput, error) {
	shop, err := srv.shopRepo.FindByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	orders, err := srv.orderRepo.FindPlacedByShop(ctx, shop.ID, orderID)
	if err != nil {
		return nil, err
	}

	return withTotals(orders), nil
}

// publishEvent enqueues an event without letting a queue failure surface to
// the caller. The state transition already committed; delivery is best effort.
func (srv *orderService) publishEvent(ctx context.Context, event *service.Event) {
	if err := srv.publisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

func withTotals(orders []*entity.Order) []*usecase.OrderOutput {
	outputs := make([]*usecase.OrderOutput, 0, len(orders))
	for _, order := range orders {
		outputs = append(outputs, &usecase.OrderOutput{
			Order: order,
			Total: order.Total(),
		})
	}

	return outputs
}
