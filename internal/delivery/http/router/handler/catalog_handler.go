package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/infra/feed"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog browsing and partner
// catalog management handlers.
type CatalogHandler struct {
	uc      usecase.CatalogUsecase
	fetcher *feed.Fetcher
	logger  *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, fetcher *feed.Fetcher, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:      uc,
		fetcher: fetcher,
		logger:  logger,
	}
}

// ListShops handles the public shop listing.
func (h *CatalogHandler) ListShops(c echo.Context) error {
	shops, err := h.uc.ListShops(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShopViews(shops), "")
}

// ListCategories handles the public category listing.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toCategoryViews(categories), "")
}

// ListProducts handles the public product listing.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	products, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products), "")
}

// SearchListings handles the public listing search. shop_id and category_id
// query parameters narrow the result; both are optional.
func (h *CatalogHandler) SearchListings(c echo.Context) error {
	var input usecase.SearchListingsInput

	if raw := c.QueryParam("shop_id"); raw != "" {
		shopID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("shop_id: must be a valid id")
		}
		input.ShopID = shopID
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("category_id: must be an integer")
		}
		input.CategoryID = categoryID
	}

	listings, err := h.uc.SearchListings(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toListingViews(listings), "")
}

type partnerUpdateRequest struct {
	URL string `json:"url" validate:"omitempty,url"`
}

type partnerUpdateView struct {
	Shop       *shopView `json:"shop"`
	Categories int       `json:"categories"`
	Listings   int       `json:"listings"`
}

// UpdateFeed ingests a partner catalog feed. The feed arrives either as a
// JSON body naming a URL to fetch, or inline as a YAML request body.
func (h *CatalogHandler) UpdateFeed(c echo.Context) error {
	body, err := h.resolveFeedBody(c)
	if err != nil {
		return err
	}

	output, err := h.uc.IngestFeed(c.Request().Context(), usecase.IngestFeedInput{
		OwnerID: middleware.UserID(c),
		Body:    body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partnerUpdateView{
		Shop:       toShopView(output.Shop),
		Categories: output.Categories,
		Listings:   output.Listings,
	}, "Catalog updated")
}

// resolveFeedBody returns the raw feed document from the request: inline
// YAML, or downloaded from the URL named in a JSON body.
func (h *CatalogHandler) resolveFeedBody(c echo.Context) ([]byte, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.Contains(contentType, "yaml") || strings.Contains(contentType, "text/plain") {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read feed body")
		}
		if len(body) == 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("body: feed document required")
		}

		return body, nil
	}

	var req partnerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid feed input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	if req.URL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("url: required when no inline feed is supplied")
	}

	body, err := h.fetcher.Fetch(c.Request().Context(), req.URL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return body, nil
}

type partnerStateRequest struct {
	AcceptingOrders *bool `json:"accepting_orders" validate:"required"`
}

// GetState reports the caller's shop order-intake state.
func (h *CatalogHandler) GetState(c echo.Context) error {
	shop, err := h.uc.GetPartnerState(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShopView(shop), "")
}

// SetState flips the caller's shop order-intake state.
func (h *CatalogHandler) SetState(c echo.Context) error {
	var req partnerStateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid state input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	shop, err := h.uc.SetPartnerState(c.Request().Context(), middleware.UserID(c), *req.AcceptingOrders)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toShopView(shop), "Shop state updated")
}
