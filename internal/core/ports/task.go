package ports

import (
	"context"
	"time"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

// TaskInput carries the writable fields of a task record.
type TaskInput struct {
	CustomerID  string
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    string
	DueDate     time.Time
}

type TaskService interface {
	List(ctx context.Context, owner string) ([]domain.Task, error)
	Create(ctx context.Context, owner string, input TaskInput) (*domain.Task, error)
	Update(ctx context.Context, owner, id string, input TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, owner, id string) error
}

type TaskRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.Task, error)
	FindByID(ctx context.Context, owner, id string) (*domain.Task, error)
	Insert(ctx context.Context, t *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, owner, id string) error
}
