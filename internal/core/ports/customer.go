package ports

import (
	"context"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// CustomerInput carries the writable fields of a customer record.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Status  domain.CustomerStatus
}

type CustomerService interface {
	List(ctx context.Context, owner string) ([]domain.Customer, error)
	Create(ctx context.Context, owner string, input CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, owner, id string, input CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, owner, id string) error
}

// CustomerRepository persists customers. All lookups are scoped to the
// owning username; a miss surfaces domain.ErrNotFound.
type CustomerRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.Customer, error)
	FindByID(ctx context.Context, owner, id string) (*domain.Customer, error)
	Insert(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, owner, id string) error
	// LastByOwner returns the most recently created customers, newest first.
	LastByOwner(ctx context.Context, owner string, limit int64) ([]domain.Customer, error)
}
