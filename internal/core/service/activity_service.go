package service

import (
	"context"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

const defaultActivityLimit = 50

// ActivityService reads the activity feed and persists records on behalf of
// the queue dispatcher workers.
type ActivityService struct {
	repo ports.ActivityRepository
}

func NewActivityService(repo ports.ActivityRepository) *ActivityService {
	return &ActivityService{repo: repo}
}

// Recent returns the newest activity records, most recent first.
func (s *ActivityService) Recent(ctx context.Context, limit int64) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

// Write persists one activity record. Implements ports.ActivityWriter.
func (s *ActivityService) Write(ctx context.Context, input ports.ActivityInput) error {
	return s.repo.Insert(ctx, &domain.Activity{
		Owner:    input.Owner,
		Action:   input.Action,
		Entity:   input.Entity,
		EntityID: input.EntityID,
		At:       input.At,
	})
}
