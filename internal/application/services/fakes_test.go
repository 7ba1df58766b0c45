package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"taskboard/internal/domain/entities"
	"taskboard/internal/domain/repositories"
)

// In-memory repositories for service tests. They mimic the store contract:
// auto-assigned ids, (nil, nil) on missing records, unique usernames.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]entities.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity := *user.GetUser()
	for _, existing := range r.users {
		if existing.Username == entity.Username {
			return nil, errors.New("UNIQUE constraint failed: users.username")
		}
	}

	r.nextID++
	entity.ID = r.nextID
	r.users[entity.ID] = entity

	created := entity
	return &created, nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	found := user
	return &found, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

type fakeTaskRepo struct {
	mu     sync.Mutex
	nextID uint
	tasks  map[uint]entities.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uint]entities.Task)}
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entities.ValidatedTask) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity := *task.GetTask()
	r.nextID++
	entity.ID = r.nextID
	r.tasks[entity.ID] = entity

	created := entity
	return &created, nil
}

func (r *fakeTaskRepo) FindByID(ctx context.Context, id uint) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	found := task
	return &found, nil
}

func (r *fakeTaskRepo) ListByOwner(ctx context.Context, ownerID uint, order repositories.ListOrder) ([]entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var tasks []entities.Task
	for _, task := range r.tasks {
		if task.OwnerID == ownerID {
			tasks = append(tasks, task)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		if order == repositories.OldestFirst {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].ID > tasks[j].ID
	})
	return tasks, nil
}

func (r *fakeTaskRepo) UpdateTitle(ctx context.Context, id uint, title string) (*entities.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	task.Title = title
	r.tasks[id] = task

	updated := task
	return &updated, nil
}

func (r *fakeTaskRepo) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, id)
	return nil
}
