// Package todotest has a behavioural suite every todo.Store must pass.
package todotest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/minimallist/internal/todo"
)

// Seed appends tasks titled by titles, marking the indexes in done completed.
func Seed(t *testing.T, s todo.Store, titles []string, done ...int) []todo.Task {
	t.Helper()
	ctx := context.Background()
	out := make([]todo.Task, 0, len(titles))
	for _, title := range titles {
		task := todo.Task{ID: todo.NewID(), Title: title}
		require.NoError(t, s.Append(ctx, task))
		out = append(out, task)
	}
	for _, i := range done {
		found, err := s.Toggle(ctx, out[i].ID)
		require.NoError(t, err)
		require.True(t, found)
		out[i].Completed = true
	}
	return out
}

// RunStoreSuite checks ordering, toggling and clearing against a fresh
// store from newStore for each case.
func RunStoreSuite(t *testing.T, newStore func(t *testing.T) todo.Store) {
	t.Run("append keeps insertion order", func(t *testing.T) {
		s := newStore(t)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		seeded := Seed(t, s, []string{"b", "a", "a"})
		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Equal(t, seeded, got)
	})

	t.Run("toggle flips only the target", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seeded := Seed(t, s, []string{"one", "two", "three"}, 2)

		found, err := s.Toggle(ctx, seeded[1].ID)
		require.NoError(t, err)
		require.True(t, found)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.False(t, got[0].Completed)
		require.True(t, got[1].Completed)
		require.True(t, got[2].Completed)

		found, err = s.Toggle(ctx, seeded[1].ID)
		require.NoError(t, err)
		require.True(t, found)
		got, err = s.List(ctx)
		require.NoError(t, err)
		require.False(t, got[1].Completed)
	})

	t.Run("toggle unknown id is a no-op", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seeded := Seed(t, s, []string{"one", "two"}, 0)

		found, err := s.Toggle(ctx, "missing")
		require.NoError(t, err)
		require.False(t, found)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Equal(t, seeded, got)
	})

	t.Run("clear completed keeps survivors in order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		seeded := Seed(t, s, []string{"a", "b", "c", "d", "e"}, 0, 2, 3)

		n, err := s.ClearCompleted(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, n)

		got, err := s.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []todo.Task{seeded[1], seeded[4]}, got)

		n, err = s.ClearCompleted(ctx)
		require.NoError(t, err)
		require.Zero(t, n)
		again, err := s.List(ctx)
		require.NoError(t, err)
		require.Equal(t, got, again)
	})

	t.Run("clear on empty store", func(t *testing.T) {
		s := newStore(t)
		n, err := s.ClearCompleted(context.Background())
		require.NoError(t, err)
		require.Zero(t, n)
		got, err := s.List(context.Background())
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
