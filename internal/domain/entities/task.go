package entities

import (
	"strings"
	"time"

	"taskboard/internal/domain/apperrors"
)

type Task struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	OwnerID   uint
}

// NewTask trims the title. The ID is assigned by the store on create and,
// together with OwnerID, never changes afterwards.
func NewTask(ownerID uint, title string) *Task {
	now := time.Now()
	return &Task{
		CreatedAt: now,
		UpdatedAt: now,
		Title:     strings.TrimSpace(title),
		OwnerID:   ownerID,
	}
}

func (t *Task) validate() error {
	if t.Title == "" {
		return apperrors.ErrValidation
	}
	if t.OwnerID == 0 {
		return apperrors.ErrValidation
	}
	return nil
}

// Rename replaces the title in place. ID and OwnerID are untouched, so a
// renamed task keeps its position in id-ordered listings.
func (t *Task) Rename(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return apperrors.ErrValidation
	}
	t.Title = title
	t.UpdatedAt = time.Now()
	return nil
}

// ValidatedTask mirrors ValidatedUser: the only form the store accepts.
type ValidatedTask struct {
	*Task
}

func NewValidatedTask(task *Task) (*ValidatedTask, error) {
	if err := task.validate(); err != nil {
		return nil, err
	}
	return &ValidatedTask{Task: task}, nil
}

func (vt *ValidatedTask) GetTask() *Task {
	return vt.Task
}
