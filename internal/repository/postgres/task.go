package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/internkaksha/internkaksha-server/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

const taskColumns = `id, title, description, points, difficulty, deadline, status, created_by, created_at, updated_at`

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task model.Task) (model.Task, error) {
	query := `INSERT INTO tasks (id, title, description, points, difficulty, deadline, status, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + taskColumns

	saved, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Description, task.Points, string(task.Difficulty),
		task.Deadline, string(task.Status), task.CreatedBy,
	))
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return saved, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) GetByCreator(ctx context.Context, userID uuid.UUID) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE created_by = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// Update writes the mutable fields of task. created_by is not part of the statement.
func (r *TaskRepository) Update(ctx context.Context, task model.Task) (model.Task, error) {
	query := `UPDATE tasks
			  SET title = $2, description = $3, points = $4, difficulty = $5, deadline = $6, status = $7, updated_at = NOW()
			  WHERE id = $1
			  RETURNING ` + taskColumns

	saved, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.ID, task.Title, task.Description, task.Points, string(task.Difficulty),
		task.Deadline, string(task.Status),
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return saved, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM tasks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task       model.Task
		difficulty string
		status     string
		deadline   sql.NullTime
	)

	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Points, &difficulty,
		&deadline, &status, &task.CreatedBy, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	task.Difficulty = model.TaskDifficulty(difficulty)
	task.Status = model.TaskStatus(status)
	if deadline.Valid {
		t := deadline.Time
		task.Deadline = &t
	}

	return task, nil
}
