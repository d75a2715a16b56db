package todo

import (
	"context"
	"fmt"
)

// Controller owns the entry draft and applies user actions to a Store.
type Controller struct {
	store Store
	newID func() string
	draft Draft
}

// Option configures a Controller.
type Option func(*Controller)

// WithIDGenerator replaces the default UUID generator.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

func NewController(store Store, opts ...Option) *Controller {
	c := &Controller{store: store, newID: NewID}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Draft returns a copy of the entry state.
func (c *Controller) Draft() Draft { return c.draft }

// BeginEntry opens the entry row. Calling it again is harmless.
func (c *Controller) BeginEntry() {
	c.draft.Active = true
}

func (c *Controller) UpdateDraft(text string) {
	c.draft.Text = text
}

// CancelEntry abandons the draft.
func (c *Controller) CancelEntry() {
	c.draft = Draft{}
}

// SubmitEntry appends the draft as a new task and closes the entry row.
// An empty draft is left exactly as it is and ok is false.
func (c *Controller) SubmitEntry(ctx context.Context) (Task, bool, error) {
	if c.draft.Text == "" {
		return Task{}, false, nil
	}
	t := Task{ID: c.newID(), Title: c.draft.Text}
	if err := c.store.Append(ctx, t); err != nil {
		return Task{}, false, fmt.Errorf("append task: %w", err)
	}
	c.draft = Draft{}
	return t, true, nil
}

func (c *Controller) ToggleCompleted(ctx context.Context, id string) (bool, error) {
	found, err := c.store.Toggle(ctx, id)
	if err != nil {
		return false, fmt.Errorf("toggle task %s: %w", id, err)
	}
	return found, nil
}

func (c *Controller) ClearCompleted(ctx context.Context) (int, error) {
	n, err := c.store.ClearCompleted(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear completed: %w", err)
	}
	return n, nil
}

func (c *Controller) Tasks(ctx context.Context) ([]Task, error) {
	tasks, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}
