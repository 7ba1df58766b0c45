package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	entity := task.GetTask()

	model := TaskModel{
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
		Title:     entity.Title,
		OwnerID:   entity.OwnerID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return nil, err
	}

	return r.FindByID(ctx, model.ID)
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*entities.Task, error) {
	var model TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.toEntity(), nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID uint, order repositories.ListOrder) ([]entities.Task, error) {
	sort := "id DESC"
	if order == repositories.OldestFirst {
		sort = "id ASC"
	}

	var models []TaskModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order(sort).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.Task, len(models))
	for i := range models {
		tasks[i] = *models[i].toEntity()
	}
	return tasks, nil
}

func (r *TaskRepository) UpdateTitle(ctx context.Context, id uint, title string) (*entities.Task, error) {
	err := r.db.WithContext(ctx).
		Model(&TaskModel{}).
		Where("id = ?", id).
		Update("title", title).Error
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&TaskModel{}, "id = ?", id).Error
}
