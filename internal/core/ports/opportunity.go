package ports

import (
	"context"
	"time"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// OpportunityInput carries the writable fields of an opportunity record.
type OpportunityInput struct {
	CustomerID string
	Name       string
	Stage      domain.Stage
	Level      domain.Level
	Amount     float64
	StartDate  time.Time
	CloseDate  time.Time
}

type OpportunityService interface {
	List(ctx context.Context, owner string) ([]domain.Opportunity, error)
	Create(ctx context.Context, owner string, input OpportunityInput) (*domain.Opportunity, error)
	Update(ctx context.Context, owner, id string, input OpportunityInput) (*domain.Opportunity, error)
	Delete(ctx context.Context, owner, id string) error
}

type OpportunityRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.Opportunity, error)
	// ListByOwnerAndStage filters by pipeline stage, used by the dashboard
	// to aggregate closed-won deals.
	ListByOwnerAndStage(ctx context.Context, owner string, stage domain.Stage) ([]domain.Opportunity, error)
	FindByID(ctx context.Context, owner, id string) (*domain.Opportunity, error)
	Insert(ctx context.Context, o *domain.Opportunity) (*domain.Opportunity, error)
	Update(ctx context.Context, o *domain.Opportunity) error
	Delete(ctx context.Context, owner, id string) error
}
