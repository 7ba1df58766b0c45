package gormdb

import (
	"time"

	"taskboard/internal/domain/entities"
)

type UserModel struct {
	ID           uint `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type TaskModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"not null"`
	OwnerID   uint   `gorm:"index;not null"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

func (m *UserModel) toEntity() *entities.User {
	return &entities.User{
		ID:           m.ID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
	}
}

func (m *TaskModel) toEntity() *entities.Task {
	return &entities.Task{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Title:     m.Title,
		OwnerID:   m.OwnerID,
	}
}
