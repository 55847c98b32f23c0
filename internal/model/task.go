package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TaskStore defines persistence operations for tasks.
type TaskStore interface {
	Create(ctx context.Context, task Task) (Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (Task, error)
	GetByCreator(ctx context.Context, userID uuid.UUID) ([]Task, error)
	Update(ctx context.Context, task Task) (Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Task represents an assignment published by a user.
type Task struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Points      int            `json:"points"`
	Difficulty  TaskDifficulty `json:"difficulty"`
	Deadline    *time.Time     `json:"deadline"`
	Status      TaskStatus     `json:"status"`
	CreatedBy   uuid.UUID      `json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// TaskDifficulty enumerates task difficulty levels.
type TaskDifficulty string

const (
	DifficultyEasy   TaskDifficulty = "EASY"
	DifficultyMedium TaskDifficulty = "MEDIUM"
	DifficultyHard   TaskDifficulty = "HARD"
)

func (d TaskDifficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

// TaskStatus enumerates task progress states.
type TaskStatus string

const (
	StatusPending    TaskStatus = "PENDING"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusCompleted  TaskStatus = "COMPLETED"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// CreateTaskParams contains parameters to create a task.
// Nil optional fields fall back to their defaults.
type CreateTaskParams struct {
	Title       string
	Description string
	Points      *int
	Difficulty  *TaskDifficulty
	Deadline    *time.Time
	Status      *TaskStatus
}

// TaskPatch carries a partial task update. Only non-nil fields are applied.
type TaskPatch struct {
	Title       *string
	Description *string
	Points      *int
	Difficulty  *TaskDifficulty
	Deadline    *time.Time
	Status      *TaskStatus
}

// Apply copies the set fields of p onto t. CreatedBy is never touched.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Points != nil {
		t.Points = *p.Points
	}
	if p.Difficulty != nil {
		t.Difficulty = *p.Difficulty
	}
	if p.Deadline != nil {
		t.Deadline = p.Deadline
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	return t
}
