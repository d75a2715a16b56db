// Package todo holds the task list state and the transitions the screen
// drives: adding entries, flipping completion and clearing completed work.
package todo

import "github.com/google/uuid"

// Task is one entry on the list.
type Task struct {
	ID        string
	Title     string
	Completed bool
}

// Draft is the transient state of the "add new item" row.
type Draft struct {
	Active bool
	Text   string
}

// NewID returns a random opaque identifier.
func NewID() string {
	return uuid.NewString()
}
