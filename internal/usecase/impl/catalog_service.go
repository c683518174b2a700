package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/feed"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	shopRepo    repository.ShopRepository
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ShopRepo    repository.ShopRepository
	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		shopRepo:    params.ShopRepo,
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IngestFeed validates a partner feed and applies it in a single
// transaction. All writes key on natural identifiers, so re-ingesting the
// same document only overwrites mutable fields.
func (srv *catalogService) IngestFeed(ctx context.Context, input usecase.IngestFeedInput) (*usecase.IngestFeedOutput, error) {
	caller, err := srv.userRepo.FindByID(ctx, input.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load ingesting user")
	}
	if !caller.Active {
		return nil, domainerrors.ErrAccountInactive
	}

	document, err := feed.Parse(input.Body)
	if err != nil {
		srv.log(ctx).Warn("Feed rejected", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, err
	}

	shop := &entity.Shop{
		Name:            document.Shop,
		AcceptingOrders: true,
		OwnerID:         input.OwnerID,
	}

	output := &usecase.IngestFeedOutput{Shop: shop}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()
		catalogRepo := repoFactory.CatalogRepo()

		if err := shopRepo.Upsert(ctx, shop); err != nil {
			return err
		}

		for _, category := range document.Categories {
			if err := catalogRepo.UpsertCategory(ctx, &entity.Category{
				ID:   category.ID,
				Name: category.Name,
			}); err != nil {
				return err
			}

			if err := catalogRepo.LinkShopCategory(ctx, shop.ID, category.ID); err != nil {
				return err
			}
		}
		output.Categories = len(document.Categories)

		for i := range document.Goods {
			if err := srv.applyGood(ctx, catalogRepo, shop.ID, &document.Goods[i]); err != nil {
				return err
			}
		}
		output.Listings = len(document.Goods)

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to apply feed", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Feed applied",
		slog.Any("shopID", shop.ID),
		slog.Int("categories", output.Categories),
		slog.Int("listings", output.Listings),
	)

	return output, nil
}

// applyGood upserts one feed good: its product, the shop's listing of it,
// and the listing's parameter values.
func (srv *catalogService) applyGood(ctx context.Context, catalogRepo repository.CatalogRepository, shopID uuid.UUID, good *feed.Good) error {
	if err := catalogRepo.UpsertProduct(ctx, &entity.Product{
		ID:         good.ID,
		Name:       good.Name,
		CategoryID: good.Category,
	}); err != nil {
		return err
	}

	listing := &entity.Listing{
		ExternalID: good.ID,
		ProductID:  good.ID,
		ShopID:     shopID,
		Model:      good.Model,
		Quantity:   good.Quantity,
		Price:      decimal.NewFromInt(good.Price),
		PriceRRC:   decimal.NewFromInt(good.PriceRRC),
	}
	if err := catalogRepo.UpsertListing(ctx, listing); err != nil {
		return err
	}

	for name, value := range feed.StringParameters(good) {
		parameter := &entity.Parameter{Name: name}
		if err := catalogRepo.UpsertParameter(ctx, parameter); err != nil {
			return err
		}

		if err := catalogRepo.SetListingParameter(ctx, listing.ID, parameter.ID, value); err != nil {
			return err
		}
	}

	return nil
}

// GetPartnerState reports whether the caller's shop accepts orders.
func (srv *catalogService) GetPartnerState(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrShopNotFound) {
		return nil, domainerrors.ErrShopNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// SetPartnerState flips order intake for the caller's shop.
func (srv *catalogService) SetPartnerState(ctx context.Context, ownerID uuid.UUID, accepting bool) (*entity.Shop, error) {
	if err := srv.shopRepo.SetAcceptingOrders(ctx, ownerID, accepting); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, err
	}

	srv.log(ctx).Info("Partner state updated", slog.Any("ownerID", ownerID), slog.Bool("accepting", accepting))

	return srv.GetPartnerState(ctx, ownerID)
}

// ListShops lists every registered shop.
func (srv *catalogService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	return srv.shopRepo.FindAll(ctx)
}

// ListCategories lists all known categories.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	return srv.catalogRepo.FindCategories(ctx)
}

// ListProducts lists all known products with categories resolved.
func (srv *catalogService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	return srv.catalogRepo.FindProducts(ctx)
}

// SearchListings returns purchasable listings matching the filter.
func (srv *catalogService) SearchListings(ctx context.Context, input usecase.SearchListingsInput) ([]*entity.Listing, error) {
	return srv.catalogRepo.SearchListings(ctx, repository.ListingFilter{
		ShopID:     input.ShopID,
		CategoryID: input.CategoryID,
	})
}
