package ports

import (
	"context"
	"time"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// ActivityInput describes one CRUD mutation to be recorded asynchronously.
type ActivityInput struct {
	Owner    string
	Action   domain.ActivityAction
	Entity   string
	EntityID string
	At       time.Time
}

// ActivityRecorder accepts activity records without blocking the caller.
// Implemented by the queue dispatcher.
type ActivityRecorder interface {
	Record(input ActivityInput)
}

// ActivityWriter persists a single activity record. Called by dispatcher
// workers, not by request handlers.
type ActivityWriter interface {
	Write(ctx context.Context, input ActivityInput) error
}

type ActivityService interface {
	Recent(ctx context.Context, limit int64) ([]domain.Activity, error)
}

type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	ListRecent(ctx context.Context, limit int64) ([]domain.Activity, error)
}
