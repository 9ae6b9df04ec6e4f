package ports

import (
	"context"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. The role is not
// part of the input: new users always receive the configured default role.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type AuthService interface {
	// Login verifies credentials and returns a signed bearer token. A missing
	// user and a wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Register creates a user with the default role.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
}
