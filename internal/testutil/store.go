package testutil

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/internkaksha/internkaksha-server/internal/model"
)

var (
	_ model.UserStore = (*UserStore)(nil)
	_ model.TaskStore = (*TaskStore)(nil)
)

// UserStore is an in-memory model.UserStore with a unique email index.
type UserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]model.User)}
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *UserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return model.User{}, model.ErrAlreadyExists
		}
	}

	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = user
	return user, nil
}

// SetRole changes a stored user's role, simulating an out-of-band update.
func (s *UserStore) SetRole(id uuid.UUID, role model.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.Role = role
	s.users[id] = u
	return nil
}

// Remove deletes a stored user.
func (s *UserStore) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
}

// TaskStore is an in-memory model.TaskStore.
type TaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]model.Task
	clock time.Time
}

func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[uuid.UUID]model.Task), clock: time.Now()}
}

// tick returns strictly increasing timestamps so creation order is stable.
func (s *TaskStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func (s *TaskStore) Create(_ context.Context, task model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.tick()
	task.CreatedAt, task.UpdatedAt = now, now
	s.tasks[task.ID] = task
	return task, nil
}

func (s *TaskStore) GetByID(_ context.Context, id uuid.UUID) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, model.ErrNotFound
	}
	return t, nil
}

func (s *TaskStore) GetByCreator(_ context.Context, userID uuid.UUID) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]model.Task, 0)
	for _, t := range s.tasks {
		if t.CreatedBy == userID {
			tasks = append(tasks, t)
		}
	}
	slices.SortFunc(tasks, func(a, b model.Task) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return tasks, nil
}

func (s *TaskStore) Update(_ context.Context, task model.Task) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok {
		return model.Task{}, model.ErrNotFound
	}
	task.CreatedBy = existing.CreatedBy
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = s.tick()
	s.tasks[task.ID] = task
	return task, nil
}

func (s *TaskStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}
