package repositories

import (
	"context"

	"taskboard/internal/domain/entities"
)

// UserRepository persists user identities. Find methods return (nil, nil)
// when no record matches; a non-nil error is a store failure.
type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
