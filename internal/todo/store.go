package todo

import (
	"context"
	"slices"
)

// Store is an ordered collection of tasks. Insertion order is display order.
type Store interface {
	Append(ctx context.Context, t Task) error
	// Toggle flips Completed on the task with id. An unknown id is not an
	// error; found reports whether anything changed.
	Toggle(ctx context.Context, id string) (found bool, err error)
	// ClearCompleted drops every completed task, keeping survivors in order.
	ClearCompleted(ctx context.Context) (removed int, err error)
	List(ctx context.Context) ([]Task, error)
}

// MemoryStore is a slice-backed Store. It is not safe for concurrent use;
// the screen mutates it from a single event loop.
type MemoryStore struct {
	tasks []Task
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Append(_ context.Context, t Task) error {
	s.tasks = append(s.tasks, t)
	return nil
}

func (s *MemoryStore) Toggle(_ context.Context, id string) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ClearCompleted(_ context.Context) (int, error) {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t Task) bool { return t.Completed })
	return before - len(s.tasks), nil
}

func (s *MemoryStore) List(_ context.Context) ([]Task, error) {
	return slices.Clone(s.tasks), nil
}
