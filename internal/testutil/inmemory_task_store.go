package testutil

import (
	"context"
	"sync"

	"github.com/inmovia/inmovia/internal/domain/task"
	ierr "github.com/inmovia/inmovia/internal/errors"
)

type InMemoryTaskStore struct {
	mu    sync.RWMutex
	tasks []*task.Task
	byID  map[string]*task.Task
}

func NewInMemoryTaskStore() *InMemoryTaskStore {
	return &InMemoryTaskStore{
		byID: make(map[string]*task.Task),
	}
}

func (s *InMemoryTaskStore) Create(ctx context.Context, t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		return ierr.NewError("task id is required").
			WithHint("Task id is required").
			Mark(ierr.ErrValidation)
	}
	if _, exists := s.byID[t.ID]; exists {
		return ierr.NewError("task already exists").
			WithHintf("Task with ID %s already exists", t.ID).
			Mark(ierr.ErrAlreadyExists)
	}

	s.tasks = append(s.tasks, t)
	s.byID[t.ID] = t
	return nil
}

func (s *InMemoryTaskStore) Get(ctx context.Context, id string) (*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, exists := s.byID[id]
	if !exists {
		return nil, ierr.NewError("task not found").
			WithHintf("Task with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}
	return t, nil
}

func (s *InMemoryTaskStore) List(ctx context.Context) ([]*task.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*task.Task, len(s.tasks))
	copy(result, s.tasks)
	return result, nil
}

func (s *InMemoryTaskStore) Update(ctx context.Context, t *task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[t.ID]; !exists {
		return ierr.NewError("task not found").
			WithHintf("Task with ID %s was not found", t.ID).
			Mark(ierr.ErrNotFound)
	}

	s.byID[t.ID] = t
	for i, existing := range s.tasks {
		if existing.ID == t.ID {
			s.tasks[i] = t
			break
		}
	}
	return nil
}

func (s *InMemoryTaskStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return ierr.NewError("task not found").
			WithHintf("Task with ID %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	delete(s.byID, id)
	for i, existing := range s.tasks {
		if existing.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return nil
}
