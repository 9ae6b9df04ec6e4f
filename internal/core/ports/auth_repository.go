package ports

import (
	"context"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
// Uniqueness of username and email is enforced by the store; a conflicting
// Create surfaces domain.ErrUserExists.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// RoleRepository defines the interface for role reference data.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	// Seed inserts the given role names if absent. Used at startup when
	// SEED_ROLES is enabled.
	Seed(ctx context.Context, names ...string) error
}
