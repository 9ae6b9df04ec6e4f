package ports

import (
	"context"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// ContactInput carries the writable fields of a contact record.
type ContactInput struct {
	CustomerID string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	Position   string
}

type ContactService interface {
	List(ctx context.Context, owner string) ([]domain.Contact, error)
	Create(ctx context.Context, owner string, input ContactInput) (*domain.Contact, error)
	Update(ctx context.Context, owner, id string, input ContactInput) (*domain.Contact, error)
	Delete(ctx context.Context, owner, id string) error
}

type ContactRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.Contact, error)
	FindByID(ctx context.Context, owner, id string) (*domain.Contact, error)
	Insert(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	Update(ctx context.Context, c *domain.Contact) error
	Delete(ctx context.Context, owner, id string) error
}
