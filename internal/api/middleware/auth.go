package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grupocrm/crm-system/internal/api/metrics"
	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

// principalKey is the echo context key under which Auth stores the resolved
// principal.
const principalKey = "auth.principal"

// Auth is the authentication filter. It runs once per request, extracts a
// bearer token if present, and on successful validation attaches the
// resolved principal to the request context. It never rejects a request:
// a missing, malformed, expired or forged token simply leaves the request
// unauthenticated, and the authorization policy downstream makes the final
// accept/reject decision. This keeps public routes reachable even when the
// client sends a broken token.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenValidationsTotal.WithLabelValues("malformed").Inc()
				return next(c)
			}

			principal, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues(validationResult(err)).Inc()
				return next(c)
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal attached by Auth, if any.
func PrincipalFrom(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}

func validationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	default:
		return "malformed"
	}
}
