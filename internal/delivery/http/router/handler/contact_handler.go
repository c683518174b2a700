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

// ContactHandler holds dependencies for delivery-contact handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

type contactRequest struct {
	City      string `json:"city" validate:"required,max=50"`
	Street    string `json:"street" validate:"required,max=100"`
	House     string `json:"house" validate:"max=15"`
	Structure string `json:"structure" validate:"max=15"`
	Building  string `json:"building" validate:"max=15"`
	Apartment string `json:"apartment" validate:"max=15"`
	Phone     string `json:"phone" validate:"required,max=20"`
}

func (r *contactRequest) toInput() usecase.ContactInput {
	return usecase.ContactInput{
		City:      r.City,
		Street:    r.Street,
		House:     r.House,
		Structure: r.Structure,
		Building:  r.Building,
		Apartment: r.Apartment,
		Phone:     r.Phone,
	}
}

// ListContacts lists the caller's delivery contacts.
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.uc.ListContacts(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactViews(contacts), "")
}

// CreateContact persists a new delivery contact.
func (h *ContactHandler) CreateContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.uc.CreateContact(c.Request().Context(), middleware.UserID(c), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toContactView(contact), "Contact created")
}

// UpdateContact modifies one of the caller's contacts.
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id: must be a valid id")
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.uc.UpdateContact(c.Request().Context(), middleware.UserID(c), contactID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toContactView(contact), "Contact updated")
}

// DeleteContact removes one of the caller's contacts.
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("id: must be a valid id")
	}

	if err := h.uc.DeleteContact(c.Request().Context(), middleware.UserID(c), contactID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contact deleted")
}
