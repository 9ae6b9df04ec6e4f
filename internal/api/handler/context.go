package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/grupocrm/crm-system/internal/api/middleware"
	"github.com/grupocrm/crm-system/internal/core/domain"
)

// principal extracts the principal attached by the auth filter. Handlers on
// protected routes run after the authorization policy, so a missing
// principal here means the route was wired without the policy — treat it as
// unauthenticated rather than panicking.
func principal(c echo.Context) (domain.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return p, nil
}
