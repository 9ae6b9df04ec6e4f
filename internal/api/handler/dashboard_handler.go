package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grupocrm/crm-system/internal/core/ports"
)

// DashboardHandler serves the landing-page aggregation.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary returns the authenticated user's dashboard figures.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  errorResponse
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summary(c.Request().Context(), p.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
