package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

const entityOpportunity = "opportunity"

// OpportunityService implements owner-scoped opportunity CRUD.
type OpportunityService struct {
	repo       ports.OpportunityRepository
	customers  ports.CustomerRepository
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewOpportunityService(repo ports.OpportunityRepository, customers ports.CustomerRepository, activities ports.ActivityRecorder, logger zerolog.Logger) *OpportunityService {
	return &OpportunityService{repo: repo, customers: customers, activities: activities, logger: logger}
}

func (s *OpportunityService) List(ctx context.Context, owner string) ([]domain.Opportunity, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *OpportunityService) Create(ctx context.Context, owner string, input ports.OpportunityInput) (*domain.Opportunity, error) {
	stage := input.Stage
	if stage == "" {
		stage = domain.StageProspecting
	}
	level := input.Level
	if level == "" {
		level = domain.LevelMedium
	}
	if !stage.Valid() || !level.Valid() || input.Amount < 0 {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.customers.FindByID(ctx, owner, input.CustomerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	opp := &domain.Opportunity{
		ID:         uuid.NewString(),
		Owner:      owner,
		CustomerID: input.CustomerID,
		Name:       input.Name,
		Stage:      stage,
		Level:      level,
		Amount:     input.Amount,
		StartDate:  input.StartDate,
		CloseDate:  input.CloseDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.repo.Insert(ctx, opp)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to create opportunity")
		return nil, err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionCreated,
		Entity: entityOpportunity, EntityID: created.ID, At: now,
	})
	return created, nil
}

func (s *OpportunityService) Update(ctx context.Context, owner, id string, input ports.OpportunityInput) (*domain.Opportunity, error) {
	if (input.Stage != "" && !input.Stage.Valid()) ||
		(input.Level != "" && !input.Level.Valid()) || input.Amount < 0 {
		return nil, domain.ErrInvalidInput
	}

	opp, err := s.repo.FindByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	opp.Name = input.Name
	opp.Amount = input.Amount
	opp.StartDate = input.StartDate
	opp.CloseDate = input.CloseDate
	if input.Stage != "" {
		opp.Stage = input.Stage
	}
	if input.Level != "" {
		opp.Level = input.Level
	}
	opp.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, opp); err != nil {
		return nil, err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionUpdated,
		Entity: entityOpportunity, EntityID: opp.ID, At: opp.UpdatedAt,
	})
	return opp, nil
}

func (s *OpportunityService) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionDeleted,
		Entity: entityOpportunity, EntityID: id, At: time.Now().UTC(),
	})
	return nil
}
