package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

// OpportunityHandler handles HTTP requests for opportunity records.
type OpportunityHandler struct {
	service ports.OpportunityService
}

func NewOpportunityHandler(service ports.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{service: service}
}

// List returns all opportunities owned by the authenticated user.
//
// @Summary      List opportunities
// @Tags         opportunities
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Opportunity
// @Failure      401  {object}  errorResponse
// @Router       /opportunities [get]
func (h *OpportunityHandler) List(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	opps, err := h.service.List(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opps)
}

// Create adds an opportunity against one of the user's customers.
//
// @Summary      Create an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      opportunityRequest  true  "Opportunity details"
// @Success      201   {object}  domain.Opportunity
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /opportunities [post]
func (h *OpportunityHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req opportunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input, err := opportunityInput(req)
	if err != nil {
		return err
	}

	opp, err := h.service.Create(c.Request().Context(), p.Username, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, opp)
}

// Update replaces the writable fields of an opportunity record.
//
// @Summary      Update an opportunity
// @Tags         opportunities
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Opportunity ID"
// @Param        body  body      opportunityRequest  true  "Opportunity details"
// @Success      200   {object}  domain.Opportunity
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /opportunities/{id} [put]
func (h *OpportunityHandler) Update(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	var req opportunityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	input, err := opportunityInput(req)
	if err != nil {
		return err
	}

	opp, err := h.service.Update(c.Request().Context(), p.Username, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, opp)
}

// Delete removes an opportunity record.
//
// @Summary      Delete an opportunity
// @Tags         opportunities
// @Security     BearerAuth
// @Param        id  path  string  true  "Opportunity ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p.Username, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func opportunityInput(req opportunityRequest) (ports.OpportunityInput, error) {
	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return ports.OpportunityInput{}, err
	}
	closeDate, err := parseDate("close_date", req.CloseDate)
	if err != nil {
		return ports.OpportunityInput{}, err
	}

	return ports.OpportunityInput{
		CustomerID: req.CustomerID,
		Name:       req.Name,
		Stage:      domain.Stage(req.Stage),
		Level:      domain.Level(req.Level),
		Amount:     req.Amount,
		StartDate:  start,
		CloseDate:  closeDate,
	}, nil
}
