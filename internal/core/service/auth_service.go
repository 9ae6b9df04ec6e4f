package service

import (
	"context"
	"errors"
	"time"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
	"github.com/grupocrm/crm-system/internal/pkg/password"
)

// AuthService implements registration and login over the credential store.
// Login never writes; registration is the only mutation.
type AuthService struct {
	users       ports.UserRepository
	roles       ports.RoleRepository
	tokens      ports.TokenService
	defaultRole string
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, tokens ports.TokenService, defaultRole string) *AuthService {
	if defaultRole == "" {
		defaultRole = domain.RoleUser
	}
	return &AuthService{users: users, roles: roles, tokens: tokens, defaultRole: defaultRole}
}

// Login verifies the credentials and issues a token embedding the user's
// username and role. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, pass string) (string, *domain.User, error) {
	if username == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		// Store connectivity problems are not credential failures.
		return "", nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Register creates a user with the configured default role. The role row
// must exist; its absence means the deployment was never seeded and is
// reported as domain.ErrMissingDefaultRole.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role, err := s.roles.FindByName(ctx, s.defaultRole)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrMissingDefaultRole
		}
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role.Name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}
