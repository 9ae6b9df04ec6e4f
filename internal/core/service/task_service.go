package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/grupocrm/crm-system/internal/core/domain"
	"github.com/grupocrm/crm-system/internal/core/ports"
)

const entityTask = "task"

// TaskService implements owner-scoped task CRUD.
type TaskService struct {
	repo       ports.TaskRepository
	activities ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, activities ports.ActivityRecorder, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, activities: activities, logger: logger}
}

func (s *TaskService) List(ctx context.Context, owner string) ([]domain.Task, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *TaskService) Create(ctx context.Context, owner string, input ports.TaskInput) (*domain.Task, error) {
	status := input.Status
	if status == "" {
		status = domain.TaskPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Owner:       owner,
		CustomerID:  input.CustomerID,
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("failed to create task")
		return nil, err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionCreated,
		Entity: entityTask, EntityID: created.ID, At: now,
	})
	return created, nil
}

func (s *TaskService) Update(ctx context.Context, owner, id string, input ports.TaskInput) (*domain.Task, error) {
	if input.Status != "" && !input.Status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	task, err := s.repo.FindByID(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	task.CustomerID = input.CustomerID
	task.Title = input.Title
	task.Description = input.Description
	task.Priority = input.Priority
	task.DueDate = input.DueDate
	if input.Status != "" {
		task.Status = input.Status
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionUpdated,
		Entity: entityTask, EntityID: task.ID, At: task.UpdatedAt,
	})
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, owner, id string) error {
	if err := s.repo.Delete(ctx, owner, id); err != nil {
		return err
	}

	s.activities.Record(ports.ActivityInput{
		Owner: owner, Action: domain.ActionDeleted,
		Entity: entityTask, EntityID: id, At: time.Now().UTC(),
	})
	return nil
}
