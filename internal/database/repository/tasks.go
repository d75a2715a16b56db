package repository

import (
	"context"
	"database/sql"

	"github.com/jask/minimallist/internal/todo"
)

// TaskRepo is a todo.Store over the tasks table.
type TaskRepo struct {
	db *sql.DB
}

var _ todo.Store = (*TaskRepo)(nil)

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{db: db} }

func (r *TaskRepo) Append(ctx context.Context, t todo.Task) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO tasks(id, title, completed) VALUES (?, ?, ?)`,
		t.ID, t.Title, t.Completed)
	return err
}

func (r *TaskRepo) Toggle(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = 1 - completed WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TaskRepo) ClearCompleted(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE completed = 1`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *TaskRepo) List(ctx context.Context) ([]todo.Task, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, completed FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []todo.Task
	for rows.Next() {
		var t todo.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Completed); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
