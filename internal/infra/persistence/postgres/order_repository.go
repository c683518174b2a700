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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// orderPreloads resolves everything a total computation or an order view
// needs: line items down to listing, product, category and parameters.
func (repo *orderRepository) orderPreloads(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Items.Listing.Product.Category").
		Preload("Items.Listing.Shop").
		Preload("Items.Listing.Parameters.Parameter").
		Preload("Contact")
}

// FindBasket retrieves the user's basket, fully resolved. It never creates one.
func (repo *orderRepository) FindBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.orderPreloads(ctx).
		Where("user_id = ? AND status = ?", userID, entity.StatusBasket.String()).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBasketNotFound
		}

		return nil, errors.Wrap(err, "failed to find basket")
	}

	return toOrderDomain(&orderM), nil
}

// GetOrCreateBasket returns the user's basket, creating an empty one when
// absent. The partial unique index on (user_id) WHERE status='basket' makes
// the insert race-safe: the losing writer falls through to the reload.
func (repo *orderRepository) GetOrCreateBasket(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	orderM := &model.OrderModel{
		UserID: userID,
		Status: entity.StatusBasket.String(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(orderM).Error
	if err != nil && !isUniqueConstraintViolation(err) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create basket")
	}

	var stored model.OrderModel
	if err := repo.orderPreloads(ctx).
		Where("user_id = ? AND status = ?", userID, entity.StatusBasket.String()).
		First(&stored).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load basket after create")
	}

	return toOrderDomain(&stored), nil
}

// CreateItem adds a line item to an order.
func (repo *orderRepository) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	itemM := &model.OrderItemModel{
		OrderID:   item.OrderID,
		ListingID: item.ListingID,
		Quantity:  item.Quantity,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderItem
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrListingNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order item")
	}

	item.ID = itemM.ID

	return nil
}

// UpdateItemQuantity sets the quantity of one item scoped to the given order.
func (repo *orderRepository) UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, quantity int) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderItemModel{}).
		Where("id = ? AND order_id = ?", itemID, orderID).
		Update("quantity", quantity)

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return 0, domainerrors.ErrValidationFailed.WrapMessage("quantity must be positive")
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order item quantity")
	}

	return result.RowsAffected, nil
}

// DeleteItems removes the given items scoped to the given order.
func (repo *orderRepository) DeleteItems(ctx context.Context, orderID uuid.UUID, itemIDs []uuid.UUID) (int64, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("order_id = ? AND id IN ?", orderID, itemIDs).
		Delete(&model.OrderItemModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete order items")
	}

	return result.RowsAffected, nil
}

// TransitionToPlaced atomically moves the order from basket to new, attaching
// the delivery contact. The status guard in the WHERE clause means at most
// one of two concurrent checkouts observes a match.
func (repo *orderRepository) TransitionToPlaced(ctx context.Context, orderID, userID, contactID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND user_id = ? AND status = ?", orderID, userID, entity.StatusBasket.String()).
		Updates(map[string]interface{}{
			"status":     entity.StatusNew.String(),
			"contact_id": contactID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, repository.ErrContactNotFound
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to place order")
	}

	return result.RowsAffected, nil
}

// FindByID retrieves one order belonging to the user, any status.
func (repo *orderRepository) FindByID(ctx context.Context, orderID, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.orderPreloads(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindPlacedByUser lists the user's non-basket orders, newest first.
func (repo *orderRepository) FindPlacedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.orderPreloads(ctx).
		Where("user_id = ? AND status <> ?", userID, entity.StatusBasket.String()).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list placed orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindPlacedByShop lists non-basket orders containing at least one line item
// whose listing belongs to the shop. Line items of other shops are stripped
// from the result, so totals computed over it stay shop-scoped.
func (repo *orderRepository) FindPlacedByShop(ctx context.Context, shopID, orderID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	query := repo.orderPreloads(ctx).
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN listings ON listings.id = order_items.listing_id").
		Where("listings.shop_id = ? AND orders.status <> ?", shopID, entity.StatusBasket.String()).
		Distinct("orders.*").
		Order("orders.created_at DESC")

	if orderID != uuid.Nil {
		query = query.Where("orders.id = ?", orderID)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by shop")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		order := toOrderDomain(orderM)

		scoped := make([]entity.OrderItem, 0, len(order.Items))
		for _, item := range order.Items {
			if item.Listing != nil && item.Listing.ShopID == shopID {
				scoped = append(scoped, item)
			}
		}
		order.Items = scoped

		orders = append(orders, order)
	}

	return orders, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:        data.ID,
		UserID:    data.UserID,
		Status:    entity.OrderStatus(data.Status),
		ContactID: data.ContactID,
		Contact:   toContactDomain(data.Contact),
		Items:     items,
		CreatedAt: data.CreatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem.
func toOrderItemDomain(data *model.OrderItemModel) entity.OrderItem {
	return entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ListingID: data.ListingID,
		Quantity:  data.Quantity,
		Listing:   toListingDomain(data.Listing),
	}
}
