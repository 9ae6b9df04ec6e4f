package ports

import "github.com/grupocrm/crm-system/internal/core/domain"

// TokenService issues and validates self-contained bearer tokens. Validation
// is purely cryptographic: it never consults the credential store.
type TokenService interface {
	Issue(username, role string) (string, error)
	// Validate returns the embedded principal, or one of
	// domain.ErrTokenMalformed, domain.ErrInvalidSignature,
	// domain.ErrTokenExpired.
	Validate(token string) (domain.Principal, error)
}
