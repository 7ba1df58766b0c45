package services

import (
	"context"

	"taskboard/internal/application/command"
	"taskboard/internal/domain/apperrors"
	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

// TaskService enforces per-owner access on every task operation. Caller
// identity always arrives as an explicit parameter resolved from the
// session, never from request-supplied task data.
type TaskService struct {
	tasks repositories.TaskRepository
}

func NewTaskService(tasks repositories.TaskRepository) *TaskService {
	return &TaskService{tasks: tasks}
}

func (s *TaskService) List(ctx context.Context, ownerID uint, order repositories.ListOrder) ([]entities.Task, error) {
	return s.tasks.ListByOwner(ctx, ownerID, order)
}

func (s *TaskService) Create(ctx context.Context, cmd *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	task := entities.NewTask(cmd.OwnerID, cmd.Title)
	validated, err := entities.NewValidatedTask(task)
	if err != nil {
		return nil, err
	}

	created, err := s.tasks.Create(ctx, validated)
	if err != nil {
		return nil, err
	}

	return &command.CreateTaskCommandResult{TaskID: created.ID}, nil
}

// Get is the read-for-edit path: owner-only, like every mutation.
func (s *TaskService) Get(ctx context.Context, taskID, callerID uint) (*entities.Task, error) {
	return s.fetchOwned(ctx, taskID, callerID)
}

// Update replaces the title in place. ID and owner are untouched, so the
// task keeps its position in id-ordered listings.
func (s *TaskService) Update(ctx context.Context, cmd *command.UpdateTaskCommand) (*entities.Task, error) {
	task, err := s.fetchOwned(ctx, cmd.TaskID, cmd.CallerID)
	if err != nil {
		return nil, err
	}

	if err := task.Rename(cmd.Title); err != nil {
		return nil, err
	}

	return s.tasks.UpdateTitle(ctx, task.ID, task.Title)
}

func (s *TaskService) Delete(ctx context.Context, taskID, callerID uint) error {
	task, err := s.fetchOwned(ctx, taskID, callerID)
	if err != nil {
		return err
	}
	return s.tasks.Delete(ctx, task.ID)
}

// fetchOwned resolves a task and applies the ownership gate: ErrNotFound
// for a missing id, ErrNotOwner when the caller is not the owner.
func (s *TaskService) fetchOwned(ctx context.Context, taskID, callerID uint) (*entities.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperrors.ErrNotFound
	}
	if task.OwnerID != callerID {
		return nil, apperrors.ErrNotOwner
	}
	return task, nil
}
