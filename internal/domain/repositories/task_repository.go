package repositories

import (
	"context"

	"taskboard/internal/domain/entities"
)

// ListOrder selects the listing direction. Ordering is always by id, the
// creation sequence, so edits never move a task.
type ListOrder int

const (
	NewestFirst ListOrder = iota
	OldestFirst
)

// TaskRepository persists tasks. FindByID returns (nil, nil) when the task
// does not exist; ownership checks belong to the service layer.
type TaskRepository interface {
	Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error)
	FindByID(ctx context.Context, id uint) (*entities.Task, error)
	ListByOwner(ctx context.Context, ownerID uint, order ListOrder) ([]entities.Task, error)
	UpdateTitle(ctx context.Context, id uint, title string) (*entities.Task, error)
	Delete(ctx context.Context, id uint) error
}
