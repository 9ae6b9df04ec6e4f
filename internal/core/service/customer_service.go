package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

const entityCustomer = "customer"

// CustomerService implements owner-scoped customer CRUD.
type CustomerService struct {
	repo       ports.CustomerRepository
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, activities ports.ActivityRecorder, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, activities: activities, logger: logger}
}

func (s *CustomerService) List(ctx context.Context, owner string) ([]domain.Customer, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *CustomerService) Create(ctx context.Context, owner string, input ports.CustomerInput) (*domain.Customer, error) {
	status := input.Status
	if status == "" {
		status = domain.CustomerProspect
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		Owner:     owner,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Insert(ctx, customer)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to create customer")
		return nil, err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionCreated,
		Entity: entityCustomer, EntityID: created.ID, At: now,
	})
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, owner, id string, input ports.CustomerInput) (*domain.Customer, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	customer, err := s.repo.FindByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	customer.Name = input.Name
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	if input.Status != "" {
		customer.Status = input.Status
	}
	customer.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionUpdated,
		Entity: entityCustomer, EntityID: customer.ID, At: customer.UpdatedAt,
	})
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionDeleted,
		Entity: entityCustomer, EntityID: id, At: time.Now().UTC(),
	})
	return nil
}
