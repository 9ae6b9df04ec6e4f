package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grupocrm/crm-system/internal/core/ports"
)

// ContactHandler handles HTTP requests for contact records.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// List returns all contacts owned by the authenticated user.
//
// @Summary      List contacts
// @Tags         contacts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Contact
// @Failure      401  {object}  errorResponse
// @Router       /contacts [get]
func (h *ContactHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	contacts, err := h.service.List(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contacts)
}

// Create adds a contact linked to one of the user's customers.
//
// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      201   {object}  domain.Contact
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /contacts [post]
func (h *ContactHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	contact, err := h.service.Create(c.Request().Context(), p.Username, contactInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contact)
}

// Update replaces the writable fields of a contact record.
//
// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Contact ID"
// @Param        body  body      contactRequest  true  "Contact details"
// @Success      200   {object}  domain.Contact
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	contact, err := h.service.Update(c.Request().Context(), p.Username, c.Param("id"), contactInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contact)
}

// Delete removes a contact record.
//
// @Summary      Delete a contact
// @Tags         contacts
// @Security     BearerAuth
// @Param        id  path  string  true  "Contact ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p.Username, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func contactInput(req contactRequest) ports.ContactInput {
	return ports.ContactInput{
		CustomerID: req.CustomerID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Position:   req.Position,
	}
}
