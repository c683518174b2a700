package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for basket and order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetBasket returns the caller's basket snapshot.
func (h *OrderHandler) GetBasket(c echo.Context) error {
	output, err := h.uc.GetBasket(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderView(output.Order, output.Total.StringFixed(2)), "")
}

type addItemsRequest struct {
	Items []addItemRequest `json:"items" validate:"required,min=1,dive"`
}

type addItemRequest struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// AddItems adds a batch of line items to the caller's basket.
func (h *OrderHandler) AddItems(c echo.Context) error {
	var req addItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.AddItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		listingID, err := uuid.Parse(item.ListingID)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("listing_id: must be a valid id")
		}
		items = append(items, usecase.AddItemInput{
			ListingID: listingID,
			Quantity:  item.Quantity,
		})
	}

	output, err := h.uc.AddItems(c.Request().Context(), middleware.UserID(c), items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(output.Order, output.Total.StringFixed(2)), "Items added")
}

type updateItemsRequest struct {
	Items []updateItemRequest `json:"items" validate:"required,min=1"`
}

type updateItemRequest struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

type mutationView struct {
	Count int64 `json:"count"`
}

// UpdateItems sets quantities on existing basket items.
func (h *OrderHandler) UpdateItems(c echo.Context) error {
	var req updateItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	items := make([]usecase.UpdateItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.UpdateItemInput{
			ItemID:   item.ID,
			Quantity: item.Quantity,
		})
	}

	output, err := h.uc.UpdateItems(c.Request().Context(), middleware.UserID(c), items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mutationView{Count: output.Count}, "Items updated")
}

type removeItemsRequest struct {
	Items []string `json:"items" validate:"required,min=1"`
}

// RemoveItems deletes basket items by id.
func (h *OrderHandler) RemoveItems(c echo.Context) error {
	var req removeItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid basket input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RemoveItems(c.Request().Context(), middleware.UserID(c), req.Items)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, mutationView{Count: output.Count}, "Items removed")
}

type placeOrderRequest struct {
	OrderID   string `json:"id" validate:"required,uuid"`
	ContactID string `json:"contact_id" validate:"required,uuid"`
}

// PlaceOrder turns the caller's basket into a placed order.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id: must be a valid id")
	}
	contactID, err := uuid.Parse(req.ContactID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("contact_id: must be a valid id")
	}

	output, err := h.uc.PlaceOrder(c.Request().Context(), middleware.UserID(c), usecase.PlaceOrderInput{
		OrderID:   orderID,
		ContactID: contactID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toOrderView(output.Order, output.Total.StringFixed(2)), "Order placed")
}

// ListOrders lists the caller's placed orders.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	outputs, err := h.uc.ListOrders(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(outputs), "")
}

// ListPartnerOrders lists placed orders containing the caller's shop's
// listings, totals restricted to those lines.
func (h *OrderHandler) ListPartnerOrders(c echo.Context) error {
	orderID := uuid.Nil
	if raw := c.QueryParam("order_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("order_id: must be a valid id")
		}
		orderID = parsed
	}

	outputs, err := h.uc.ListPartnerOrders(c.Request().Context(), middleware.UserID(c), orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toOrderViews(outputs), "")
}
