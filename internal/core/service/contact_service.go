package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

const entityContact = "contact"

// ContactService implements owner-scoped contact CRUD. A contact always
// belongs to one of the owner's customers; the reference is checked on
// create and update.
type ContactService struct {
	repo       ports.ContactRepository
	customers  ports.CustomerRepository
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, customers ports.CustomerRepository, activities ports.ActivityRecorder, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, customers: customers, activities: activities, logger: logger}
}

func (s *ContactService) List(ctx context.Context, owner string) ([]domain.Contact, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *ContactService) Create(ctx context.Context, owner string, input ports.ContactInput) (*domain.Contact, error) {
	if _, err := s.customers.FindByID(ctx, owner, input.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contact := &domain.Contact{
		Owner:      owner,
		CustomerID: input.CustomerID,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Position:   input.Position,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Insert(ctx, contact)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to create contact")
		return nil, err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionCreated,
		Entity: entityContact, EntityID: created.ID, At: now,
	})
	return created, nil
}

func (s *ContactService) Update(ctx context.Context, owner, id string, input ports.ContactInput) (*domain.Contact, error) {
	contact, err := s.repo.FindByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if input.CustomerID != contact.CustomerID {
		if _, err := s.customers.FindByID(ctx, owner, input.CustomerID); err != nil {
			return nil, err
		}
		contact.CustomerID = input.CustomerID
	}

	contact.FirstName = input.FirstName
	contact.LastName = input.LastName
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.Position = input.Position
	contact.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionUpdated,
		Entity: entityContact, EntityID: contact.ID, At: contact.UpdatedAt,
	})
	return contact, nil
}

func (s *ContactService) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionDeleted,
		Entity: entityContact, EntityID: id, At: time.Now().UTC(),
	})
	return nil
}
